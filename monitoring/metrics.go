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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var InvitationsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "finshare_invitations_created_total",
	Help: "The total number of created invitations",
})

var InvitationsRateLimited = promauto.NewCounter(prometheus.CounterOpts{
	Name: "finshare_invitations_rate_limited_total",
	Help: "The total number of invitation creations rejected by the rate limiter",
})

// Consents is labeled with the outcome: accepted or rejected.
var Consents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "finshare_consents_total",
	Help: "The total number of answered invitations",
}, []string{"outcome"})

var ExtractionScopes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "finshare_extraction_scope_total",
	Help: "The total number of per scope extraction attempts",
}, []string{"scope", "outcome"})

var ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "finshare_extraction_duration_seconds",
	Help:    "Duration of a complete extraction run in seconds",
	Buckets: prometheus.DefBuckets,
})

// InvitationsExpired is labeled with the path which expired the invitation: lazy or sweep.
var InvitationsExpired = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "finshare_invitations_expired_total",
	Help: "The total number of invitations transitioned to EXPIRED",
}, []string{"path"})

var Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "finshare_notifications_total",
	Help: "The total number of lifecycle notifications",
}, []string{"kind", "outcome"})

var ExpirationDaemonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "finshare_daemon_expiration_duration_seconds",
	Help:    "Duration of a full expiration sweep in seconds",
	Buckets: prometheus.DefBuckets,
})
