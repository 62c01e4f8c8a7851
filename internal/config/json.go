package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file. Durations accept strings such as "30s" or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Environment        string   `json:"environment"`
		LogLevel           string   `json:"log_level"`
		PasswordHashCost   int      `json:"password_hash_cost"`
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
		RegistrationStatus string   `json:"registration_status"`
		Version            string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server"`

	Adapter struct {
		CRM struct {
			LoginURL       string   `json:"login_url"`
			ClientID       string   `json:"client_id"`
			ClientSecret   string   `json:"client_secret"`
			APIVersion     string   `json:"api_version"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"crm"`
	} `json:"adapter"`
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
		App: App{
			Environment:        jsonCfg.App.Environment,
			LogLevel:           jsonCfg.App.LogLevel,
			PasswordHashCost:   jsonCfg.App.PasswordHashCost,
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenDuration:      time.Duration(jsonCfg.App.TokenDuration),
			RegistrationStatus: jsonCfg.App.RegistrationStatus,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			CRM: CRM{
				LoginURL:       jsonCfg.Adapter.CRM.LoginURL,
				ClientID:       jsonCfg.Adapter.CRM.ClientID,
				ClientSecret:   jsonCfg.Adapter.CRM.ClientSecret,
				APIVersion:     jsonCfg.Adapter.CRM.APIVersion,
				RequestTimeout: time.Duration(jsonCfg.Adapter.CRM.RequestTimeout),
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
