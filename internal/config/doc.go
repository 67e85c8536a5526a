// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the vault daemon and vault client settings.
//
// Values come from environment variables, command-line flags and an optional
// JSON file. Sources are merged with mergo in that order, so an environment
// variable wins over a flag and a flag wins over the JSON file. Built-in
// defaults fill whatever is still empty. The merged StructuredConfig is then
// projected into a role-specific view (DaemonConfig or ClientConfig) and
// validated.
package config
