// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a host:port pair usable as a flag value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial StructuredConfig. Unset flags stay
// zero so that lower-priority sources can fill them.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var httpAddress, grpcAddress NetAddress

	fs := flag.NewFlagSet("vault-bridge", flag.ContinueOnError)
	fs.Var(&httpAddress, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC listen address host:port")
	fs.StringVar(&cfg.Storage.VaultDir, "vault-dir", "", "Directory of the encrypted vault files")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Settings database DSN (sqlite path or postgres URL)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g. 15m)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Integrity hash key")
	fs.StringVar(&cfg.App.DeviceSecret, "device-secret", "", "Keychain device secret")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.IntVar(&cfg.Bridge.QueueSize, "queue-size", 0, "Bridge method queue size")
	fs.IntVar(&cfg.Bridge.Workers, "bridge-workers", 0, "Bridge method queue workers")
	fs.DurationVar(&cfg.Vault.AutoLockTimeout, "auto-lock", 0, "Default auto-lock timeout (e.g. 1h)")
	fs.DurationVar(&cfg.Vault.AutoLockCheckInterval, "auto-lock-check", 0, "Auto-lock check interval")
	fs.StringVar(&cfg.Client.DaemonAddress, "daemon", "", "Daemon base URL for the client")
	fs.DurationVar(&cfg.Client.RequestTimeout, "client-timeout", 0, "Client request timeout")
	fs.DurationVar(&cfg.Client.ClipboardClearDelay, "clipboard-clear", 0, "Clipboard clear delay")
	fs.StringVar(&cfg.Client.LogFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return cfg, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses "host:port". Host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
