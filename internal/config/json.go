// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout. Durations accept either
// a Go duration string ("30s") or a number of nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		DeviceSecret  string   `json:"device_secret"`
	} `json:"app"`

	Storage struct {
		VaultDir string `json:"vault_dir"`
		DSN      string `json:"dsn"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Bridge struct {
		QueueSize int `json:"queue_size"`
		Workers   int `json:"workers"`
	} `json:"bridge"`

	Vault struct {
		AutoLockTimeout       Duration `json:"auto_lock_timeout"`
		AutoLockCheckInterval Duration `json:"auto_lock_check_interval"`
	} `json:"vault"`

	Client struct {
		DaemonAddress       string   `json:"daemon_address"`
		RequestTimeout      Duration `json:"request_timeout"`
		ClipboardClearDelay Duration `json:"clipboard_clear_delay"`
		LogFile             string   `json:"log_file"`
		Name                string   `json:"name"`
	} `json:"client"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jc StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  jc.App.TokenSignKey,
			TokenIssuer:   jc.App.TokenIssuer,
			TokenDuration: time.Duration(jc.App.TokenDuration),
			HashKey:       jc.App.HashKey,
			DeviceSecret:  jc.App.DeviceSecret,
		},
		Storage: Storage{
			VaultDir: jc.Storage.VaultDir,
			DB:       DB{DSN: jc.Storage.DSN},
		},
		Server: Server{
			HTTPAddress:    jc.Server.HTTPAddress,
			GRPCAddress:    jc.Server.GRPCAddress,
			RequestTimeout: time.Duration(jc.Server.RequestTimeout),
		},
		Bridge: Bridge{
			QueueSize: jc.Bridge.QueueSize,
			Workers:   jc.Bridge.Workers,
		},
		Vault: Vault{
			AutoLockTimeout:       time.Duration(jc.Vault.AutoLockTimeout),
			AutoLockCheckInterval: time.Duration(jc.Vault.AutoLockCheckInterval),
		},
		Client: Client{
			DaemonAddress:       jc.Client.DaemonAddress,
			RequestTimeout:      time.Duration(jc.Client.RequestTimeout),
			ClipboardClearDelay: time.Duration(jc.Client.ClipboardClearDelay),
			LogFile:             jc.Client.LogFile,
			Name:                jc.Client.Name,
		},
	}, nil
}

// Duration is a time.Duration that unmarshals from a string or a number.
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
