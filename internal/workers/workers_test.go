// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends its id to a shared log on Run and Stop.
type recordingWorker struct {
	id  int
	log *[]string
}

func (r *recordingWorker) Run(context.Context) {
	*r.log = append(*r.log, "run", string(rune('0'+r.id)))
}

func (r *recordingWorker) Stop() {
	*r.log = append(*r.log, "stop", string(rune('0'+r.id)))
}

func TestWorkers_RunInOrderStopInReverse(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: 1, log: &log},
		&recordingWorker{id: 2, log: &log},
		&recordingWorker{id: 3, log: &log},
	)

	ws.Run(context.Background())
	ws.Stop()

	assert.Equal(t, []string{
		"run", "1", "run", "2", "run", "3",
		"stop", "3", "stop", "2", "stop", "1",
	}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Run(context.Background())
		ws.Stop()
	})
}

func TestWorkers_ZeroValue(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() {
		ws.Run(context.Background())
		ws.Stop()
	})
}
