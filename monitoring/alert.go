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

package monitoring

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// InitErrorTracking configures sentry. An empty dsn disables sending events.
func InitErrorTracking(dsn, environment string) error {
	if dsn == "" {
		slog.Info("error tracking disabled")
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
		TracesSampleRate: 0,
	})
	if err != nil {
		return errors.Wrap(err, "could not initialize error tracking")
	}
	slog.Info("error tracking initialized", "environment", environment)
	return nil
}

// FlushErrorTracking waits for buffered events before the process exits.
func FlushErrorTracking() {
	sentry.Flush(2 * time.Second)
}

func Alert(message string, err error) {
	if err == nil {
		err = errors.New(message)
	}
	evID := sentry.CurrentHub().CaptureException(errors.Wrap(err, message))
	slog.Error("critical error encountered", "msg", message, "err", err, "eventID", evID)
}

func RecoverAndAlert(message string, recovered any) {
	evID := sentry.CurrentHub().Recover(recovered)
	slog.Error("critical error encountered (recover)", "msg", message, "err", recovered, "eventID", evID)
}
