package frpadmin

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Credential is the HTTP Basic auth pair the admin API is protected with.
type Credential struct {
	User     string
	Password string
}

// String renders the credential as a Basic auth token: base64(user:password).
func (cred *Credential) String() string {
	return base64.StdEncoding.EncodeToString([]byte(cred.User + ":" + cred.Password))
}

func (cred *Credential) Header() string {
	return "Basic " + cred.String()
}

// ParseCredential splits a "user:password" string into a Credential.
func ParseCredential(val string) (*Credential, error) {

	user, password, has := strings.Cut(val, ":")
	if !has {
		return nil, fmt.Errorf("illformed credential string")
	}

	if user == "" {
		return nil, fmt.Errorf("illformed credential user")
	}

	return &Credential{User: user, Password: password}, nil
}
