// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the request bodies of the bridge HTTP endpoints
// before they reach the bridge.
package validators

import "context"

// Validator validates a value. When fields are given, only those struct
// fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
