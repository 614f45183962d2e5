package frpadmin_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	frpadmin "github.com/maddsua/frp-admin"
)

func TestNewClient_InvalidAddr(t *testing.T) {

	invalid := []string{
		"",
		"   ",
		"\t\n",
		"ftp://localhost:7400",
		"localhost:7400",
		"http://",
	}

	for _, addr := range invalid {
		if _, err := frpadmin.NewClient(addr, "admin", "admin"); err == nil {
			t.Errorf("unexpected absense of error for addr %q", addr)
		}
	}
}

func TestNewClient_NoNetworkIO(t *testing.T) {

	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	client, err := frpadmin.NewClient(srv.URL, "admin", "admin")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if client.BaseURL.Host == "" {
		t.Errorf("base url host not set")
	}

	if val := hits.Load(); val != 0 {
		t.Errorf("request count; expected: 0; got: %d", val)
	}
}

func TestCredential_Header(t *testing.T) {

	cred := frpadmin.Credential{User: "admin", Password: "s3cret"}

	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:s3cret"))
	if val := cred.Header(); val != expected {
		t.Errorf("auth header; expected: %s; got: %s", expected, val)
	}
}

func TestCredential_Parse(t *testing.T) {

	cred, err := frpadmin.ParseCredential("admin:pass:word")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cred.User != "admin" {
		t.Errorf("user; expected: admin; got: %s", cred.User)
	} else if cred.Password != "pass:word" {
		t.Errorf("password; expected: pass:word; got: %s", cred.Password)
	}

	if _, err := frpadmin.ParseCredential("justuser"); err == nil {
		t.Errorf("unexpected absense of error for credential without separator")
	}
}
