// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means neither an HTTP nor a gRPC address was configured.
var errNoServersAreCreated = errors.New("no listener address configured for the bridge")
