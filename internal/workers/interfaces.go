// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the vault daemon: the bridge
// method queue and the auto-lock check. Workers groups them so the daemon
// starts and stops them together.
package workers

import "context"

// Worker is a background job. Run must not block; it starts the job's
// goroutines, which exit when ctx is done or Stop is called. Stop blocks
// until they have exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
