// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BridgeResult is the body of a resolved bridge call.
type BridgeResult[T any] struct {
	Result T `json:"result"`
}

// BridgeRejection is the body of a rejected bridge call.
type BridgeRejection struct {
	Code    string `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
