package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cghdev/userdesk/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given as integer seconds so the file stays trivially editable:
//
//	{
//	  "base_url": "http://localhost:8081",
//	  "resource_prefix": "/user",
//	  "request_timeout": 10,
//	  "online_check_interval": 5
//	}
type jsonConfig struct {
	BaseURL             string `json:"base_url"`
	ResourcePrefix      string `json:"resource_prefix"`
	RequestTimeout      int    `json:"request_timeout"`
	OnlineCheckInterval int    `json:"online_check_interval"`
}

// parseJSON overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. With no such flag nothing is loaded. Read or
// unmarshal errors panic; the caller may recover if desired. Only fields
// present in the file override earlier values.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.ResourcePrefix != "" {
		cfg.ResourcePrefix = jc.ResourcePrefix
	}
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout) * time.Second
	}
	if jc.OnlineCheckInterval > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval) * time.Second
	}
}
