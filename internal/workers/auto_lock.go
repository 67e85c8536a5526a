// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/service"
)

type autoLockWorker struct {
	vault    service.VaultService
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewAutoLockWorker returns a worker that asks vault to lock itself once
// it has been idle for longer than the stored auto-lock timeout. The check
// runs every cfg.AutoLockCheckInterval, or every
// config.DefaultAutoLockCheckInterval when that is not positive.
func NewAutoLockWorker(vault service.VaultService, cfg config.Vault, logger *logger.Logger) Worker {
	interval := cfg.AutoLockCheckInterval
	if interval <= 0 {
		interval = config.DefaultAutoLockCheckInterval
	}

	return &autoLockWorker{
		vault:    vault,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run stops a previously started check loop and starts a new one.
func (w *autoLockWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(w.logger.WithContext(ctx))
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.check(jobCtx)
			}
		}
	}()
}

func (w *autoLockWorker) check(ctx context.Context) {
	locked, err := w.vault.LockIfIdle(ctx, w.now())
	if err != nil {
		w.logger.Err(err).Str("func", "autoLockWorker.check").Msg("auto-lock check failed")
		return
	}
	if locked {
		w.logger.Info().Str("func", "autoLockWorker.check").Msg("vault locked after inactivity")
	}
}

// Stop is a no-op when the worker is not running.
func (w *autoLockWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
