// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-vault-bridge/models"
)

var (
	ErrInvalidTokenParams         = errors.New("issuer, client, duration and sign key are required")
	ErrTokenWithoutClient         = errors.New("token carries no client name")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

const bearerScheme = "Bearer"

// GenerateJWTToken signs an HS256 bridge token naming client as its subject.
// A negative duration yields an already expired token.
func GenerateJWTToken(issuer, client string, duration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || client == "" || duration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	issuedAt := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   client,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign bridge token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: signed, Client: client}, nil
}

// ValidateAndParseJWTToken accepts only HS256 tokens from issuer that are
// unexpired and name a client.
func ValidateAndParseJWTToken(signed, signKey, issuer string) (models.Token, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(signed, &claims,
		func(*jwt.Token) (any, error) { return []byte(signKey), nil },
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bridge token: %w", err)
	}
	if claims.Subject == "" {
		return models.Token{}, ErrTokenWithoutClient
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: signed, Client: claims.Subject}, nil
}

// ParseBearerToken returns the credentials of an Authorization header value
// using the Bearer scheme. The scheme name is case-insensitive.
func ParseBearerToken(header string) (string, error) {
	scheme, credentials, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) || credentials == "" || strings.ContainsRune(credentials, ' ') {
		return "", ErrInvalidAuthorizationHeader
	}
	return credentials, nil
}
