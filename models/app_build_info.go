// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// unknownBuildValue stands in for build metadata the linker did not inject.
const unknownBuildValue = "N/A"

// AppBuildInfo is the linker-injected identity of a vault binary.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo trims the injected values and marks missing ones as N/A.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// Known reports whether a version was injected at build time.
func (a AppBuildInfo) Known() bool {
	return a.Version != unknownBuildValue
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version, a.Date, a.Commit)
}

func orUnknown(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return unknownBuildValue
	}
	return v
}
