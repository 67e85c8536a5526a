// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is a transport listener. RunServer blocks until the server stops;
// Shutdown stops it gracefully.
type Server interface {
	RunServer()
	Shutdown()
}
