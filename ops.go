package frpadmin

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
)

// GetStatus pulls the proxy status table from an frpc process.
func GetStatus[T any](ctx context.Context, client *Client) Result[T] {
	return fetch[T](ctx, client, http.MethodGet, "/api/status", nil, ContentTypeJSON)
}

// GetConfig reads the running frpc configuration. The config travels as
// text/plain unless contentType overrides it; pass "" for the default.
func GetConfig[T any](ctx context.Context, client *Client, contentType string) Result[T] {

	if contentType == "" {
		contentType = ContentTypeText
	}

	return fetch[T](ctx, client, http.MethodGet, "/api/config", nil, contentType)
}

// UpdateConfig replaces the frpc configuration. The change is staged only;
// ReloadConfig makes the process pick it up.
func UpdateConfig[T any](ctx context.Context, client *Client, config any, contentType string) Result[T] {

	if contentType == "" {
		contentType = ContentTypeText
	}

	return fetch[T](ctx, client, http.MethodPut, "/api/config", config, contentType)
}

// ReloadConfig asks frpc to re-read its configuration.
func ReloadConfig[T any](ctx context.Context, client *Client) Result[T] {
	return fetch[T](ctx, client, http.MethodGet, "/api/reload", nil, ContentTypeJSON)
}

// GetServerInfo pulls the global stats of an frps process.
func GetServerInfo[T any](ctx context.Context, client *Client) Result[T] {
	return fetch[T](ctx, client, http.MethodGet, "/api/serverinfo", nil, ContentTypeJSON)
}

// GetProxiesByType lists the proxies of one type (tcp, udp, http, https, ...)
// registered on an frps process.
func GetProxiesByType[T any](ctx context.Context, client *Client, proxyType string) Result[T] {
	return fetch[T](ctx, client, http.MethodGet, "/api/proxy/"+url.PathEscape(proxyType), nil, ContentTypeJSON)
}

// GetTrafficByProxy pulls the per-day traffic history of a named proxy.
func GetTrafficByProxy[T any](ctx context.Context, client *Client, name string) Result[T] {
	return fetch[T](ctx, client, http.MethodGet, "/api/traffic/"+url.PathEscape(name), nil, ContentTypeJSON)
}

// Stop asks the frpc process to shut down. Fire-and-forget: the call
// succeeds once the request is out the door, a context cancellation while
// the process is going down counts as success too, and any response body
// is discarded. Only a genuine send failure comes back as a failed Result.
func (client *Client) Stop(ctx context.Context) Result[bool] {

	req, err := newRequest(ctx, client, http.MethodPost, "/api/stop", nil, "")
	if err != nil {
		return Fail[bool](err.Error())
	}

	resp, err := client.httpClient().Do(req)
	if err != nil {

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Ok(true)
		}

		return Fail[bool](err.Error())
	}

	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return Ok(true)
}
