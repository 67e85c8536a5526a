// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP and gRPC listeners of the vault daemon and
// shuts them down gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
