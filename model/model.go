// Package model holds the wire types of the frp admin API.
package model

// ClientStatus maps a proxy type to the proxies an frpc process runs.
type ClientStatus map[string][]ProxyStatus

type ProxyStatus struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Err        string `json:"err"`
	LocalAddr  string `json:"local_addr"`
	Plugin     string `json:"plugin"`
	RemoteAddr string `json:"remote_addr"`
}

type ServerInfo struct {
	Version           string           `json:"version"`
	BindPort          int              `json:"bind_port"`
	VhostHTTPPort     int              `json:"vhost_http_port"`
	VhostHTTPSPort    int              `json:"vhost_https_port"`
	KCPBindPort       int              `json:"kcp_bind_port"`
	QUICBindPort      int              `json:"quic_bind_port"`
	SubdomainHost     string           `json:"subdomain_host"`
	MaxPoolCount      int64            `json:"max_pool_count"`
	MaxPortsPerClient int64            `json:"max_ports_per_client"`
	HeartbeatTimeout  int64            `json:"heart_beat_timeout"`
	AllowPorts        string           `json:"allow_ports_str,omitempty"`
	TotalTrafficIn    int64            `json:"total_traffic_in"`
	TotalTrafficOut   int64            `json:"total_traffic_out"`
	CurConns          int64            `json:"cur_conns"`
	ClientCounts      int64            `json:"client_counts"`
	ProxyTypeCounts   map[string]int64 `json:"proxy_type_count"`
}

// ProxyList is the response shape of GET /api/proxy/{type}.
type ProxyList struct {
	Proxies []ProxyInfo `json:"proxies"`
}

type ProxyInfo struct {
	Name            string         `json:"name"`
	Conf            map[string]any `json:"conf"`
	ClientVersion   string         `json:"client_version,omitempty"`
	TodayTrafficIn  int64          `json:"today_traffic_in"`
	TodayTrafficOut int64          `json:"today_traffic_out"`
	CurConns        int64          `json:"cur_conns"`
	LastStartTime   string         `json:"last_start_time"`
	LastCloseTime   string         `json:"last_close_time"`
	Status          string         `json:"status"`
}

// ProxyTraffic is the per-day traffic history of one proxy.
// TrafficIn and TrafficOut hold one entry per day, most recent first.
type ProxyTraffic struct {
	Name       string  `json:"name"`
	TrafficIn  []int64 `json:"traffic_in"`
	TrafficOut []int64 `json:"traffic_out"`
}
