package frpadmin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
)

// fetch runs a single admin API round trip. Every failure class
// (request construction, transport, status, decode) comes back
// as a failed Result; nothing escapes as a Go error or panic.
func fetch[T any](ctx context.Context, client *Client, method string, path string, payload any, contentType string) Result[T] {

	req, err := newRequest(ctx, client, method, path, payload, contentType)
	if err != nil {
		return Fail[T](err.Error())
	}

	resp, err := client.httpClient().Do(req)
	if err != nil {
		return Fail[T](err.Error())
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Fail[T](fmt.Sprintf("read body: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {

		if text := strings.TrimSpace(string(data)); text != "" {
			return Fail[T](fmt.Sprintf("http %s: %s", resp.Status, text))
		}

		return Fail[T](fmt.Sprintf("http %s", resp.Status))
	}

	if strings.TrimSpace(string(data)) == "" {
		var zero T
		return Ok(zero)
	}

	val, err := decoderFor[T]()(data)
	if err != nil {
		return Fail[T](fmt.Sprintf("decode: %v", err))
	}

	return Ok(val)
}

func newRequest(ctx context.Context, client *Client, method string, path string, payload any, contentType string) (*http.Request, error) {

	if client.BaseURL == nil {
		return nil, fmt.Errorf("base address not set")
	}

	reqUrl := url.URL{
		Scheme: client.BaseURL.Scheme,
		Host:   client.BaseURL.Host,
		Path:   strings.TrimRight(client.BaseURL.Path, "/") + path,
	}

	bodyReader, err := encodePayload(payload, contentType)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, reqUrl.String(), bodyReader)
	if err != nil {
		return nil, err
	}

	if client.Credential != nil {
		req.Header.Set("Authorization", client.Credential.Header())
	}

	req.Header.Set("Accept", ContentTypeJSON)

	if bodyReader != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// encodePayload serializes the request body. A textual payload tagged
// text/plain goes over the wire verbatim; everything else is JSON.
func encodePayload(payload any, contentType string) (io.Reader, error) {

	if payload == nil {
		return nil, nil
	}

	if strings.EqualFold(contentType, ContentTypeText) {

		switch val := payload.(type) {
		case string:
			return strings.NewReader(val), nil
		case []byte:
			return bytes.NewReader(val), nil
		}
	}

	var buff bytes.Buffer
	if err := json.NewEncoder(&buff).Encode(payload); err != nil {
		return nil, fmt.Errorf("marshal: %v", err)
	}

	return &buff, nil
}
