// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/utils"
	"github.com/MKhiriev/go-vault-bridge/models"
)

// tokenRefreshMargin renews the bearer token this long before it expires.
const tokenRefreshMargin = 30 * time.Second

type httpVaultAdapter struct {
	client *utils.HTTPClient

	hashKey string

	signKey       string
	issuer        string
	clientName    string
	tokenDuration time.Duration

	mu    sync.Mutex
	token models.Token

	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs an HTTP implementation of [VaultAdapter]
// talking to cfg.Client.DaemonAddress. Bearer tokens are signed locally with
// cfg.TokenSignKey; when cfg.HashKey is set every request body carries the
// HashSHA256 header and every response is checked against it.
//
// Returns an error if the daemon address is empty or is not a valid URL.
func NewHTTPVaultAdapter(cfg config.ClientConfig, logger *logger.Logger) (VaultAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Client.DaemonAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid daemon address: %w", err)
	}

	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	return &httpVaultAdapter{
		client:        utils.NewHTTPClient(baseURL, cfg.Client.RequestTimeout),
		hashKey:       cfg.HashKey,
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		clientName:    cfg.Client.Name,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// bearer returns a signed token, issuing a new one when the cached token is
// about to expire.
func (h *httpVaultAdapter) bearer() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token.SignedString != "" && h.token.ExpiresAt != nil &&
		time.Until(h.token.ExpiresAt.Time) > tokenRefreshMargin {
		return h.token.SignedString, nil
	}

	token, err := utils.GenerateJWTToken(h.issuer, h.clientName, h.tokenDuration, h.signKey)
	if err != nil {
		return "", fmt.Errorf("sign bearer token: %w", err)
	}
	h.token = token
	return token.SignedString, nil
}

func (h *httpVaultAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.bearer()
	if err != nil {
		return nil, err
	}
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

// verifyResponse checks the HashSHA256 header of a non-empty response body.
func (h *httpVaultAdapter) verifyResponse(resp *resty.Response) error {
	if h.hashKey == "" || len(resp.Body()) == 0 {
		return nil
	}

	if !utils.VerifyBody(resp.Body(), resp.Header().Get(models.HashHeader)) {
		return ErrIntegrityCheckFailed
	}
	return nil
}

// post sends body (nil for none) to route and decodes the bridge result.
func post[T any](ctx context.Context, h *httpVaultAdapter, route string, body any) (T, error) {
	var zero T

	req, err := h.authedRequest(ctx)
	if err != nil {
		return zero, err
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("encode %s request: %w", route, err)
		}
		req.SetBody(payload)
		if h.hashKey != "" {
			req.SetHeader(models.HashHeader, utils.SignBody(payload))
		}
	}

	resp, err := req.Post(route)
	if err != nil {
		return zero, fmt.Errorf("%s request: %w", route, err)
	}
	if err = h.verifyResponse(resp); err != nil {
		return zero, fmt.Errorf("%s response: %w", route, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	var result models.BridgeResult[T]
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return zero, fmt.Errorf("decode %s response: %w", route, err)
	}
	return result.Result, nil
}

// postUnit is post for calls that resolve without a value.
func postUnit(ctx context.Context, h *httpVaultAdapter, route string, body any) error {
	_, err := post[struct{}](ctx, h, route, body)
	return err
}
