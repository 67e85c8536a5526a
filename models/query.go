// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QueryRow is a single result row of a vault query keyed by column name.
// Values are nil, int64, float64, string or, for blob columns, the base64
// encoding of the blob.
type QueryRow map[string]any

// BlobParamPrefix marks a string query parameter that must be bound as a
// blob: the remainder of the string is the base64 encoded value.
const BlobParamPrefix = "av-base64-to-blob:"
