// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package daemons

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/l3montree-dev/finshare/monitoring"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ExpirationDaemon periodically runs the full expiration sweep.
// The sweep is idempotent, so several replicas may run it concurrently.
type ExpirationDaemon struct {
	expirationService shared.ExpirationService
	interval          time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewExpirationDaemon(lc fx.Lifecycle, expirationService shared.ExpirationService, cfg shared.Config) *ExpirationDaemon {
	daemon := newExpirationDaemon(expirationService, cfg.ExpireInterval)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			daemon.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			daemon.Stop()
			return nil
		},
	})
	return daemon
}

func newExpirationDaemon(expirationService shared.ExpirationService, interval time.Duration) *ExpirationDaemon {
	return &ExpirationDaemon{
		expirationService: expirationService,
		interval:          interval,
	}
}

// Start runs a sweep right away and then every interval. A non positive interval disables the daemon.
func (d *ExpirationDaemon) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.interval <= 0 {
		slog.Info("expiration daemon disabled")
		return
	}
	if d.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})

	go func() {
		defer close(d.done)
		d.tick(ctx)
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.tick(ctx)
			}
		}
	}()
}

// Stop cancels a running sweep and waits for the daemon goroutine to return.
func (d *ExpirationDaemon) Stop() {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (d *ExpirationDaemon) tick(ctx context.Context) {
	start := time.Now()
	expired, err := d.expirationService.ExpireAll(ctx)
	monitoring.ExpirationDaemonDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		monitoring.Alert("expiration sweep failed", errors.Wrap(err, "could not expire invitations"))
		return
	}
	slog.Debug("expiration sweep finished", "expired", expired, "duration", time.Since(start))
}
