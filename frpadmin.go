package frpadmin

import (
	"context"

	"github.com/maddsua/frp-admin/model"
)

// Typed shorthands over the generic operations.

func (client *Client) Status(ctx context.Context) Result[model.ClientStatus] {
	return GetStatus[model.ClientStatus](ctx, client)
}

func (client *Client) Config(ctx context.Context) Result[string] {
	return GetConfig[string](ctx, client, "")
}

func (client *Client) SetConfig(ctx context.Context, config string) Result[string] {
	return UpdateConfig[string](ctx, client, config, "")
}

func (client *Client) Reload(ctx context.Context) Result[string] {
	return ReloadConfig[string](ctx, client)
}

func (client *Client) ServerInfo(ctx context.Context) Result[model.ServerInfo] {
	return GetServerInfo[model.ServerInfo](ctx, client)
}

func (client *Client) ProxiesByType(ctx context.Context, proxyType string) Result[model.ProxyList] {
	return GetProxiesByType[model.ProxyList](ctx, client, proxyType)
}

func (client *Client) TrafficByProxy(ctx context.Context, name string) Result[model.ProxyTraffic] {
	return GetTrafficByProxy[model.ProxyTraffic](ctx, client, name)
}
