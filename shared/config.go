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

package shared

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting of the service. The values come from the process environment
// after the optional .env file was loaded by LoadConfig.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"debug"`

	EnableProfiling bool `env:"ENABLE_PROFILING" envDefault:"false"`

	FrontendURL        string   `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	ErrorTrackingDSN string `env:"ERROR_TRACKING_DSN"`
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	DisableAutomigrate bool  `env:"DISABLE_AUTOMIGRATE" envDefault:"false"`
	SnowflakeNode      int64 `env:"SNOWFLAKE_NODE" envDefault:"0"`

	InvitationTokenSecret string        `env:"INVITATION_TOKEN_SECRET"`
	SessionJWTSecret      string        `env:"SESSION_JWT_SECRET"`
	SessionJWTIssuer      string        `env:"SESSION_JWT_ISSUER"`
	InvitationTTL         time.Duration `env:"INVITATION_TTL" envDefault:"168h"`
	InvitationRateWindow  time.Duration `env:"INVITATION_RATE_WINDOW" envDefault:"1h"`
	InvitationRateMax     int64         `env:"INVITATION_RATE_MAX" envDefault:"100"`

	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"15s"`
	PlaidClientID   string        `env:"PLAID_CLIENT_ID"`
	PlaidSecret     string        `env:"PLAID_SECRET"`
	PlaidEnv        string        `env:"PLAID_ENV" envDefault:"sandbox"`
	PlaidProducts   []string      `env:"PLAID_PRODUCTS" envSeparator:"," envDefault:"auth,identity,transactions"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"no-reply@finshare.local"`
	SMTPTLS      bool   `env:"SMTP_TLS" envDefault:"true"`

	NotificationWorkers int `env:"NOTIFICATION_WORKERS" envDefault:"4"`

	ExpireBatchSize int           `env:"EXPIRE_BATCH_SIZE" envDefault:"500"`
	ExpireInterval  time.Duration `env:"EXPIRE_INTERVAL" envDefault:"10m"`

	OperatorUserIDs          []string `env:"OPERATOR_USER_IDS" envSeparator:","`
	PublicRateLimitPerMinute int      `env:"PUBLIC_RATE_LIMIT_PER_MINUTE" envDefault:"60"`
}

// ParseConfig reads the environment into a Config.
func ParseConfig() (Config, error) {
	return env.ParseAs[Config]()
}
