// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes the vault bridge over HTTP.
//
// Every bridge call is a POST under /api/vault. Requests pass through the
// trace id, access log, panic recovery and gzip middleware; vault routes
// additionally require a bearer token and, when a hash key is configured,
// a HashSHA256 header over the body. Rejected calls are rendered as
// models.BridgeRejection with a status derived from the error kind.
package http
