// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

// CredentialManagerModuleName is the name the application layer resolves
// the credential module by.
const CredentialManagerModuleName = "NativeCredentialManager"

// CredentialManager is registered so the module resolves; it has no calls.
type CredentialManager struct{}

func NewCredentialManager() *CredentialManager {
	return &CredentialManager{}
}

func (m *CredentialManager) ModuleName() string {
	return CredentialManagerModuleName
}
