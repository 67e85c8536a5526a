// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-bridge/internal/crypto"
	"github.com/MKhiriev/go-vault-bridge/internal/service"
	"github.com/MKhiriev/go-vault-bridge/internal/store"
	"github.com/MKhiriev/go-vault-bridge/models"
)

var (
	ErrQueueClosed = errors.New("bridge method queue is closed")
	ErrQueueFull   = errors.New("bridge method queue is full")
	ErrPanic       = errors.New("bridge method panicked")
)

// ErrorKind tells the caller what class of failure rejected a call.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindStoreUnavailable
	KindNotFound
	KindPermissionDenied
	KindInvalidArgument
	KindLocked
)

var kindNames = map[ErrorKind]string{
	KindUnknown:          "Unknown",
	KindStoreUnavailable: "StoreUnavailable",
	KindNotFound:         "NotFound",
	KindPermissionDenied: "PermissionDenied",
	KindInvalidArgument:  "InvalidArgument",
	KindLocked:           "Locked",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// ParseErrorKind is the inverse of ErrorKind.String. Unknown names map to
// KindUnknown.
func ParseErrorKind(name string) ErrorKind {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind
		}
	}
	return KindUnknown
}

// Rejection codes. They match the codes the application layer already
// switches on.
const (
	CodeDBError           = "DB_ERROR"
	CodeGetRevision       = "ERR_GET_REVISION"
	CodeSetRevision       = "ERR_SET_REVISION"
	CodeInitError         = "INIT_ERROR"
	CodeMetadataError     = "METADATA_ERROR"
	CodeKeychainError     = "KEYCHAIN_ERROR"
	CodeQueryError        = "QUERY_ERROR"
	CodeUpdateError       = "UPDATE_ERROR"
	CodeRawError          = "RAW_ERROR"
	CodeTransactionError  = "TRANSACTION_ERROR"
	CodeSettingsError     = "SETTINGS_ERROR"
	CodeAuthMethodError   = "AUTH_METHOD_ERROR"
	CodeInvalidAuthMethod = "INVALID_AUTH_METHOD"
	CodeClipboardError    = "CLIPBOARD_ERROR"
)

// BridgeError is the rejection value of every bridge promise. The cause
// stays reachable through errors.Is and errors.As.
type BridgeError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *BridgeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *BridgeError) Unwrap() error {
	return e.Err
}

// Rejection converts the error into its wire form.
func (e *BridgeError) Rejection() models.BridgeRejection {
	message := e.Message
	if e.Err != nil {
		message = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return models.BridgeRejection{Code: e.Code, Kind: e.Kind.String(), Message: message}
}

// newBridgeError wraps err under code. An err that already is a
// *BridgeError is returned unchanged.
func newBridgeError(code, message string, err error) *BridgeError {
	var bridgeErr *BridgeError
	if errors.As(err, &bridgeErr) {
		return bridgeErr
	}
	if code == CodeAuthMethodError && errors.Is(err, models.ErrUnknownAuthMethod) {
		code = CodeInvalidAuthMethod
	}
	return &BridgeError{Kind: ClassifyError(err), Code: code, Message: message, Err: err}
}

// kindTable is checked in order; the first match wins.
var kindTable = []struct {
	err  error
	kind ErrorKind
}{
	{service.ErrVaultLocked, KindLocked},
	{store.ErrDatabaseNotInitialized, KindLocked},

	{store.ErrKeychainAuthFailed, KindPermissionDenied},
	{service.ErrTokenIsExpiredOrInvalid, KindPermissionDenied},
	{service.ErrUnlockFailed, KindPermissionDenied},
	{crypto.ErrDecryptionFailed, KindPermissionDenied},

	{store.ErrEncryptedDatabaseNotFound, KindNotFound},
	{store.ErrSettingNotFound, KindNotFound},
	{store.ErrKeyNotFound, KindNotFound},
	{service.ErrNoKeyDerivationParams, KindNotFound},
	{service.ErrNoEncryptionKey, KindNotFound},

	{service.ErrInvalidDataProvided, KindInvalidArgument},
	{service.ErrInvalidEncryptionKey, KindInvalidArgument},
	{service.ErrInvalidMetadata, KindInvalidArgument},
	{service.ErrInvalidKeyDerivationParams, KindInvalidArgument},
	{service.ErrInvalidAutoLockTimeout, KindInvalidArgument},
	{models.ErrUnknownAuthMethod, KindInvalidArgument},
	{store.ErrInvalidBlobParam, KindInvalidArgument},
	{store.ErrInvalidDatabaseImage, KindInvalidArgument},
	{crypto.ErrInvalidKeyLength, KindInvalidArgument},
	{crypto.ErrInvalidEncoding, KindInvalidArgument},

	{store.ErrStorageUnavailable, KindStoreUnavailable},
	{store.ErrBeginningTransaction, KindStoreUnavailable},
	{store.ErrCommitingTransaction, KindStoreUnavailable},
	{ErrQueueClosed, KindStoreUnavailable},
	{ErrQueueFull, KindStoreUnavailable},
	{context.Canceled, KindStoreUnavailable},
	{context.DeadlineExceeded, KindStoreUnavailable},
}

// ClassifyError maps err to an ErrorKind.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var bridgeErr *BridgeError
	if errors.As(err, &bridgeErr) {
		return bridgeErr.Kind
	}
	for _, entry := range kindTable {
		if errors.Is(err, entry.err) {
			return entry.kind
		}
	}
	return KindUnknown
}
