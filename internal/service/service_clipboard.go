// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
)

type clipboardService struct {
	write func(text string) error

	mu    sync.Mutex
	timer *time.Timer
	// generation invalidates a timer that fired while being replaced.
	generation uint64

	logger *logger.Logger
}

// NewClipboardService returns a ClipboardService backed by the system
// clipboard.
func NewClipboardService(logger *logger.Logger) ClipboardService {
	return newClipboardService(clipboard.WriteAll, logger)
}

func newClipboardService(write func(text string) error, logger *logger.Logger) *clipboardService {
	return &clipboardService{write: write, logger: logger}
}

func (c *clipboardService) ClearClipboardAfterDelay(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		c.logger.Debug().Str("func", "clipboardService.ClearClipboardAfterDelay").Msg("delay is 0 or negative, not scheduling clipboard clear")
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	generation := c.generation
	c.timer = time.AfterFunc(delay, func() { c.clear(generation) })

	c.logger.Info().Str("func", "clipboardService.ClearClipboardAfterDelay").Dur("delay", delay).Msg("clipboard clear scheduled")
	return nil
}

func (c *clipboardService) clear(generation uint64) {
	c.mu.Lock()
	if generation != c.generation {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.mu.Unlock()

	if err := c.write(""); err != nil {
		c.logger.Err(err).Str("func", "clipboardService.clear").Msg("error clearing clipboard")
		return
	}
	c.logger.Info().Str("func", "clipboardService.clear").Msg("clipboard cleared")
}

func (c *clipboardService) Flush(ctx context.Context) error {
	c.mu.Lock()
	pending := c.timer != nil
	c.cancelLocked()
	c.mu.Unlock()

	if !pending {
		return nil
	}
	if err := c.write(""); err != nil {
		return fmt.Errorf("error clearing clipboard: %w", err)
	}
	c.logger.Info().Str("func", "clipboardService.Flush").Msg("pending clipboard clear flushed")
	return nil
}

func (c *clipboardService) cancelLocked() {
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
