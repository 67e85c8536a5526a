// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/mock"
	"github.com/MKhiriev/go-vault-bridge/internal/service"
	"github.com/MKhiriev/go-vault-bridge/internal/store"
)

func newHealthClient(t *testing.T, health service.HealthService) healthpb.HealthClient {
	t.Helper()

	h := NewHandler(&service.Services{HealthService: health}, logger.Nop())
	srv := grpc.NewServer(grpc.UnaryInterceptor(h.LoggingInterceptor))
	h.Register(srv)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		service string
		pingErr error
		want    healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "daemon serving", service: "", want: healthpb.HealthCheckResponse_SERVING},
		{name: "module serving", service: "NativeVaultManager", want: healthpb.HealthCheckResponse_SERVING},
		{name: "store down", service: "NativeCredentialManager", pingErr: store.ErrStorageUnavailable, want: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			health := mock.NewMockHealthService(gomock.NewController(t))
			health.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)
			client := newHealthClient(t, health)

			resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: tt.service})

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetStatus())
		})
	}
}

func TestHealthCheck_UnknownService(t *testing.T) {
	health := mock.NewMockHealthService(gomock.NewController(t))
	client := newHealthClient(t, health)

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "Nope"})

	assert.Equal(t, codes.NotFound, status.Code(err))
}
