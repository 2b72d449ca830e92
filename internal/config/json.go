package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// duration strings, matching the on-disk configuration file format.
type StructuredJSONConfig struct {
	Auth struct {
		MasterAPIKey string `json:"master_api_key"`
	} `json:"auth,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ConfigDocument string   `json:"config_document"`
	} `json:"server,omitempty"`

	CORS struct {
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"cors,omitempty"`

	Bootstrap struct {
		ConfigURL      string   `json:"config_url"`
		LoadTimeout    Duration `json:"load_timeout"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"bootstrap,omitempty"`

	Version string `json:"version"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			MasterAPIKey: jsonCfg.Auth.MasterAPIKey,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			ConfigDocument: jsonCfg.Server.ConfigDocument,
		},
		CORS: CORS{
			AllowedOrigins: jsonCfg.CORS.AllowedOrigins,
		},
		Bootstrap: Bootstrap{
			ConfigURL:      jsonCfg.Bootstrap.ConfigURL,
			LoadTimeout:    time.Duration(jsonCfg.Bootstrap.LoadTimeout),
			RequestTimeout: time.Duration(jsonCfg.Bootstrap.RequestTimeout),
		},
		Version:      jsonCfg.Version,
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from JSON strings like
// "30s" or "1h30m" as well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	default:
		// let encoding/json produce the type error
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
