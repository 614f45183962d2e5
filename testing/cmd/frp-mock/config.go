package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	location   string
	ListenAddr string        `yaml:"listen_addr"`
	User       string        `yaml:"user"`
	Password   string        `yaml:"password"`
	ConfigText string        `yaml:"config_text"`
	Server     ServerConfig  `yaml:"server"`
	Proxies    []ProxyConfig `yaml:"proxies"`
}

type ServerConfig struct {
	Version  string `yaml:"version"`
	BindPort int    `yaml:"bind_port"`
}

type ProxyConfig struct {
	Name       string  `yaml:"name"`
	Type       string  `yaml:"type"`
	Status     string  `yaml:"status"`
	LocalAddr  string  `yaml:"local_addr"`
	RemoteAddr string  `yaml:"remote_addr"`
	CurConns   int64   `yaml:"cur_conns"`
	TrafficIn  []int64 `yaml:"traffic_in"`
	TrafficOut []int64 `yaml:"traffic_out"`
}

func FindConfigLocation() string {

	entries := []string{
		"./frp-mock.yaml",
		"./frp-mock.yml",
		"./testing/cmd/frp-mock/frp-mock.yaml",
		"./testing/cmd/frp-mock/frp-mock.yml",
	}

	for _, name := range entries {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

func LoadConfig(location string) (*Config, error) {

	if location == "" {
		if location = FindConfigLocation(); location == "" {
			return nil, fmt.Errorf("config file not found")
		}
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("read config: %v", err)
	}

	cfg := Config{location: location}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %v", err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "localhost:7400"
	}

	return &cfg, nil
}
