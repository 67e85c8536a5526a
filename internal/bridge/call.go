// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
)

// call queues fn and returns the promise it settles. Every path settles the
// promise exactly once: fn's result, fn's error, a panic inside fn or a
// rejected submission.
func call[T any](ctx context.Context, q *MethodQueue, method, code, message string, fn func(ctx context.Context) (T, error)) *Promise[T] {
	p := newPromise[T]()

	run := func(ctx context.Context) {
		log := logger.FromContext(ctx)
		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("func", method).Any("panic", r).Msg("bridge method panicked")
				p.reject(&BridgeError{Kind: KindUnknown, Code: code, Message: message, Err: fmt.Errorf("%w: %v", ErrPanic, r)})
			}
		}()

		value, err := fn(ctx)
		if err != nil {
			bridgeErr := newBridgeError(code, message, err)
			log.Err(err).Str("func", method).Str("code", bridgeErr.Code).Str("kind", bridgeErr.Kind.String()).Msg("bridge call rejected")
			p.reject(bridgeErr)
			return
		}
		p.resolve(value)
	}

	abort := func(err error) {
		p.reject(newBridgeError(code, message, err))
	}

	if err := q.submit(job{ctx: ctx, run: run, abort: abort}); err != nil {
		abort(err)
	}
	return p
}

// unit adapts an operation without a result.
func unit(fn func(ctx context.Context) error) func(ctx context.Context) (struct{}, error) {
	return func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}
}
