// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/handler"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
)

// server fans RunServer and Shutdown out to every configured listener.
type server struct {
	listeners []Server
	logger    *logger.Logger
}

// NewServer builds a listener for each transport that has both an address
// and a handler.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.listeners = append(s.listeners, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.listeners = append(s.listeners, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.listeners) == 0 {
		return nil, errNoServersAreCreated
	}
	logger.Info().Int("listeners", len(s.listeners)).Msg("bridge server created")
	return s, nil
}

// RunServer blocks until SIGINT, SIGTERM or SIGQUIT and then shuts every
// listener down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	var wg sync.WaitGroup
	for _, l := range s.listeners {
		wg.Add(1)
		go func(l Server) {
			defer wg.Done()
			l.Shutdown()
		}(l)
	}
	wg.Wait()
}

func (s *server) run(ctx context.Context) {
	for _, l := range s.listeners {
		go l.RunServer()
	}

	<-ctx.Done()
	s.logger.Info().Msg("stop signal received, shutting listeners down")
	s.Shutdown()
	s.logger.Info().Msg("bridge server stopped")
}
