// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault daemon handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, bridge rejections or log entries to describe the
// outcome of an operation. Keeping them in one place ensures consistent
// wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is the rejection message of a bridge call whose
	// body cannot be decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected daemon-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgInvalidGzipData is returned when a request claims gzip encoding but
	// its body is not a gzip stream.
	MsgInvalidGzipData = "invalid gzip data"

	// MsgRequestAborted is the rejection message of a bridge call whose
	// request context ended before the call settled.
	MsgRequestAborted = "request aborted"
)
