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
	"github.com/l3montree-dev/finshare/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewTokenService, fx.As(new(shared.TokenService)))),
	fx.Provide(fx.Annotate(NewInvitationRateLimiter, fx.As(new(shared.RateLimiter)))),
	fx.Provide(fx.Annotate(NewUserDirectory, fx.As(new(shared.UserDirectory)))),
	fx.Provide(fx.Annotate(NewNotificationDispatcher, fx.As(new(shared.Notifier)))),
	fx.Provide(fx.Annotate(NewExtractionService, fx.As(new(shared.ExtractionService)))),
	fx.Provide(fx.Annotate(NewInvitationService, fx.As(new(shared.InvitationService)))),
	fx.Provide(fx.Annotate(NewProviderLinkService, fx.As(new(shared.ProviderLinkService)))),
	fx.Provide(fx.Annotate(NewSharedDataService, fx.As(new(shared.SharedDataService)))),
	fx.Provide(fx.Annotate(NewExpirationService, fx.As(new(shared.ExpirationService)))),
)
