// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"sync"
)

// Promise is the single completion of a bridge call. It settles exactly
// once, either resolved with a value or rejected with a *BridgeError;
// later attempts to settle it are ignored.
type Promise[T any] struct {
	once sync.Once
	done chan struct{}

	value T
	err   error
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// resolve reports whether this call settled the promise.
func (p *Promise[T]) resolve(value T) bool {
	settled := false
	p.once.Do(func() {
		p.value = value
		settled = true
		close(p.done)
	})
	return settled
}

// reject reports whether this call settled the promise.
func (p *Promise[T]) reject(err error) bool {
	settled := false
	p.once.Do(func() {
		p.err = err
		settled = true
		close(p.done)
	})
	return settled
}

// Done is closed once the promise has settled.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the promise settles or ctx is done. Giving up on ctx
// does not settle the promise.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
