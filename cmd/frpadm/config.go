package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr     string `yaml:"addr"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

func FindConfigLocation() string {

	entries := []string{
		"./frpadm.yaml",
		"./frpadm.yml",
	}

	if home, err := os.UserHomeDir(); err == nil {
		entries = append(entries,
			filepath.Join(home, ".config/frpadm/frpadm.yaml"),
			filepath.Join(home, ".config/frpadm/frpadm.yml"))
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
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("read config: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %v", err)
	}

	return &cfg, nil
}

// GetConfigOpt resolves a connection option: flag value first,
// then the FRPADM_* env, then the config file entry.
func GetConfigOpt(flagVal string, name string, fileVal string) string {

	if flagVal != "" {
		return flagVal
	}

	if val := os.Getenv("FRPADM_" + strings.ToUpper(name)); val != "" {
		return val
	}

	return fileVal
}
