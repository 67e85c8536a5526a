// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
)

// spyClipboard records every write instead of touching the system clipboard.
type spyClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (s *spyClipboard) write(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, text)
	return s.err
}

func (s *spyClipboard) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.writes...)
}

func newTestClipboardSvc() (*clipboardService, *spyClipboard) {
	spy := &spyClipboard{}
	return newClipboardService(spy.write, logger.Nop()), spy
}

func TestClipboard_NonPositiveDelay_NoOp(t *testing.T) {
	svc, spy := newTestClipboardSvc()

	require.NoError(t, svc.ClearClipboardAfterDelay(context.Background(), 0))
	require.NoError(t, svc.ClearClipboardAfterDelay(context.Background(), -time.Second))
	time.Sleep(20 * time.Millisecond)

	assert.Empty(t, spy.snapshot())
}

func TestClipboard_ClearsAfterDelay(t *testing.T) {
	svc, spy := newTestClipboardSvc()

	require.NoError(t, svc.ClearClipboardAfterDelay(context.Background(), 10*time.Millisecond))

	assert.Eventually(t, func() bool {
		return len(spy.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{""}, spy.snapshot())
}

func TestClipboard_Reschedule_ReplacesPendingClear(t *testing.T) {
	svc, spy := newTestClipboardSvc()
	ctx := context.Background()

	require.NoError(t, svc.ClearClipboardAfterDelay(ctx, 30*time.Millisecond))
	require.NoError(t, svc.ClearClipboardAfterDelay(ctx, 60*time.Millisecond))

	time.Sleep(45 * time.Millisecond)
	assert.Empty(t, spy.snapshot(), "first clear must have been cancelled")

	assert.Eventually(t, func() bool {
		return len(spy.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Len(t, spy.snapshot(), 1, "only one clear must run")
}

func TestClipboard_Flush_ClearsPendingNow(t *testing.T) {
	svc, spy := newTestClipboardSvc()
	ctx := context.Background()

	require.NoError(t, svc.ClearClipboardAfterDelay(ctx, time.Hour))
	require.NoError(t, svc.Flush(ctx))
	assert.Equal(t, []string{""}, spy.snapshot())

	require.NoError(t, svc.Flush(ctx))
	assert.Len(t, spy.snapshot(), 1, "a second flush has nothing pending")
}

func TestClipboard_Flush_NothingPending(t *testing.T) {
	svc, spy := newTestClipboardSvc()

	require.NoError(t, svc.Flush(context.Background()))
	assert.Empty(t, spy.snapshot())
}

func TestClipboard_Flush_CancelsTimer(t *testing.T) {
	svc, spy := newTestClipboardSvc()
	ctx := context.Background()

	require.NoError(t, svc.ClearClipboardAfterDelay(ctx, 20*time.Millisecond))
	require.NoError(t, svc.Flush(ctx))
	time.Sleep(50 * time.Millisecond)

	assert.Len(t, spy.snapshot(), 1, "the timer must not clear a second time")
}

func TestClipboard_Flush_Error(t *testing.T) {
	svc, spy := newTestClipboardSvc()
	spy.err = errors.New("no clipboard")
	ctx := context.Background()

	require.NoError(t, svc.ClearClipboardAfterDelay(ctx, time.Hour))
	assert.Error(t, svc.Flush(ctx))
}
