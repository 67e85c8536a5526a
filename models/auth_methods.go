// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// AuthMethods is a bitset of the enabled vault unlock methods.
type AuthMethods int

const (
	// AuthMethodFaceID allows unlocking with the key kept in the device
	// keychain.
	AuthMethodFaceID AuthMethods = 1 << iota
	// AuthMethodPassword allows unlocking with the master password.
	AuthMethodPassword
)

// DefaultAuthMethods is used until the user configures anything else.
const DefaultAuthMethods = AuthMethodPassword

// Wire names of the auth methods.
const (
	AuthMethodFaceIDName   = "faceid"
	AuthMethodPasswordName = "password"
)

// ErrUnknownAuthMethod is returned by ParseAuthMethods for unsupported names.
var ErrUnknownAuthMethod = errors.New("unknown auth method")

// ParseAuthMethods converts wire names into a bitset. Duplicates are allowed.
func ParseAuthMethods(names []string) (AuthMethods, error) {
	var methods AuthMethods
	for _, name := range names {
		switch name {
		case AuthMethodFaceIDName:
			methods |= AuthMethodFaceID
		case AuthMethodPasswordName:
			methods |= AuthMethodPassword
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownAuthMethod, name)
		}
	}
	return methods, nil
}

// Contains reports whether every method in m is enabled in a.
func (a AuthMethods) Contains(m AuthMethods) bool {
	return a&m == m
}

// Strings returns the wire names of the enabled methods, faceid first.
func (a AuthMethods) Strings() []string {
	names := make([]string, 0, 2)
	if a.Contains(AuthMethodFaceID) {
		names = append(names, AuthMethodFaceIDName)
	}
	if a.Contains(AuthMethodPassword) {
		names = append(names, AuthMethodPasswordName)
	}
	return names
}
