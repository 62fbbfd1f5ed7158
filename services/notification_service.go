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

package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/l3montree-dev/finshare/monitoring"
	"github.com/l3montree-dev/finshare/shared"
	"go.uber.org/fx"
)

const (
	notificationQueueSize   = 256
	notificationSendTimeout = 30 * time.Second
)

// NotificationDispatcher delivers lifecycle notifications in the background.
// Notify never blocks the caller. If the queue is full the notification is dropped and logged.
type NotificationDispatcher struct {
	mailer  shared.Mailer
	queue   chan shared.Notification
	workers int
	wg      sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewNotificationDispatcher(lc fx.Lifecycle, mailer shared.Mailer, cfg shared.Config) *NotificationDispatcher {
	d := newNotificationDispatcher(mailer, cfg.NotificationWorkers)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Stop()
			return nil
		},
	})
	return d
}

func newNotificationDispatcher(mailer shared.Mailer, workers int) *NotificationDispatcher {
	if workers < 1 {
		workers = 1
	}
	return &NotificationDispatcher{
		mailer:  mailer,
		queue:   make(chan shared.Notification, notificationQueueSize),
		workers: workers,
	}
}

func (d *NotificationDispatcher) Start() {
	for range d.workers {
		d.wg.Add(1)
		go d.work()
	}
	slog.Info("notification dispatcher started", "workers", d.workers)
}

// Stop drains the queue and waits for the workers to finish.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *NotificationDispatcher) work() {
	defer d.wg.Done()
	for notification := range d.queue {
		d.deliver(notification)
	}
}

func (d *NotificationDispatcher) deliver(notification shared.Notification) {
	defer func() {
		if r := recover(); r != nil {
			monitoring.RecoverAndAlert("panic while delivering notification", r)
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), notificationSendTimeout)
	defer cancel()

	if err := d.mailer.Send(ctx, notification); err != nil {
		monitoring.Notifications.WithLabelValues(string(notification.Kind), "failed").Inc()
		slog.Warn("could not send notification", "kind", notification.Kind, "err", err)
		return
	}
	monitoring.Notifications.WithLabelValues(string(notification.Kind), "sent").Inc()
}

func (d *NotificationDispatcher) Notify(notification shared.Notification) {
	if notification.Recipient == "" {
		slog.Debug("skipping notification without recipient", "kind", notification.Kind)
		return
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		slog.Warn("notification dispatcher is stopped, dropping notification", "kind", notification.Kind)
		return
	}
	select {
	case d.queue <- notification:
	default:
		monitoring.Notifications.WithLabelValues(string(notification.Kind), "dropped").Inc()
		slog.Warn("notification queue is full, dropping notification", "kind", notification.Kind)
	}
}
