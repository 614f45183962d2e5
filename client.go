// Package frpadmin is a client for the admin API exposed by the frp
// reverse proxy processes (frpc and frps).
package frpadmin

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type Client struct {
	BaseURL    *url.URL
	Credential *Credential
	HTTPClient *http.Client
}

// NewClient binds a client to the admin address of an frpc or frps process.
// It performs no network IO; the address is only parsed and validated.
func NewClient(baseAddr string, username string, password string) (*Client, error) {

	baseURL, err := ParseBaseAddr(baseAddr)
	if err != nil {
		return nil, err
	}

	return &Client{
		BaseURL:    baseURL,
		Credential: &Credential{User: username, Password: password},
		HTTPClient: &http.Client{},
	}, nil
}

func ParseBaseAddr(val string) (*url.URL, error) {

	if strings.TrimSpace(val) == "" {
		return nil, errors.New("base address is empty")
	}

	url, err := url.Parse(val)
	if err != nil {
		return nil, err
	}

	switch url.Scheme {
	case "http", "https":
		break
	default:
		return nil, fmt.Errorf("invalid url scheme: %s", url.Scheme)
	}

	if url.Host == "" {
		return nil, errors.New("invalid url host")
	}

	return url, nil
}

func (client *Client) httpClient() *http.Client {

	if client.HTTPClient != nil {
		return client.HTTPClient
	}

	return http.DefaultClient
}
