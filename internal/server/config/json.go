package config

import (
	"encoding/json"
	"os"

	"github.com/cghdev/userdesk/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling:
//
//	{
//	  "addr": ":8081",
//	  "database_dsn": "postgres://..."
//	}
type jsonConfig struct {
	Addr        string `json:"addr"`
	DatabaseDSN string `json:"database_dsn"`
}

// parseJSON overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. With no such flag nothing is loaded. Only fields
// present in the file override earlier values.
func parseJSON(config *Config) {
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

	if jc.Addr != "" {
		config.Addr = jc.Addr
	}
	if jc.DatabaseDSN != "" {
		config.DatabaseDSN = jc.DatabaseDSN
	}
}
