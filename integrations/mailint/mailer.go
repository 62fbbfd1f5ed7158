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

package mailint

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/l3montree-dev/finshare/database/models"
	"github.com/l3montree-dev/finshare/shared"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/wneessen/go-mail"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var subjects = map[string]map[shared.NotificationKind]string{
	"en": {
		shared.NotificationInvitation:     "You have been invited to share financial information",
		shared.NotificationConsentGranted: "Your invitation was accepted",
		shared.NotificationIdentityShared: "Identity information was shared with you",
		shared.NotificationRevoked:        "Your data sharing was revoked",
	},
	"es": {
		shared.NotificationInvitation:     "Te invitaron a compartir información financiera",
		shared.NotificationConsentGranted: "Tu invitación fue aceptada",
		shared.NotificationIdentityShared: "Se compartió información de identidad contigo",
		shared.NotificationRevoked:        "Se revocó el intercambio de datos",
	},
}

var scopeLabels = map[string]map[models.Scope]string{
	"en": {
		models.ScopeBalance:      "Account balances",
		models.ScopeIdentity:     "Identity",
		models.ScopeTransactions: "Transactions of the last 30 days",
		models.ScopeInvestments:  "Investment holdings",
	},
	"es": {
		models.ScopeBalance:      "Saldos de cuentas",
		models.ScopeIdentity:     "Identidad",
		models.ScopeTransactions: "Transacciones de los últimos 30 días",
		models.ScopeInvestments:  "Inversiones",
	},
}

type view struct {
	Language    string
	Subject     string
	ScopeLabels []string
	ExpiresAt   string
	Data        map[string]any
}

func labelsOf(language string, data map[string]any) []string {
	var scopes []models.Scope
	for _, key := range []string{"scopes", "grantedScopes"} {
		if s, ok := data[key].([]models.Scope); ok {
			scopes = s
			break
		}
	}
	return lo.Map(scopes, func(scope models.Scope, _ int) string {
		if label, ok := scopeLabels[language][scope]; ok {
			return label
		}
		return string(scope)
	})
}

// Render returns the localized subject and the html body of a notification.
func Render(notification shared.Notification) (string, string, error) {
	language := shared.MatchLanguage(notification.Language)
	subject, ok := subjects[language][notification.Kind]
	if !ok {
		return "", "", fmt.Errorf("unknown notification kind %q", notification.Kind)
	}

	data := notification.Data
	if data == nil {
		data = map[string]any{}
	}
	v := view{
		Language:    language,
		Subject:     subject,
		ScopeLabels: labelsOf(language, data),
		Data:        data,
	}
	if expiresAt, ok := data["expiresAt"].(time.Time); ok {
		v.ExpiresAt = expiresAt.UTC().Format("2006-01-02 15:04 MST")
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, fmt.Sprintf("%s_%s.html", notification.Kind, language), v); err != nil {
		return "", "", errors.Wrap(err, "could not render notification")
	}
	return subject, body.String(), nil
}

// SMTPMailer delivers notifications through an SMTP relay.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewMailer returns an SMTP mailer. Without SMTP_HOST every notification is only logged.
func NewMailer(cfg shared.Config) (shared.Mailer, error) {
	if cfg.SMTPHost == "" {
		slog.Warn("SMTP_HOST is not set, notifications will only be logged")
		return LogMailer{}, nil
	}

	options := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTimeout(20 * time.Second),
	}
	if cfg.SMTPTLS {
		options = append(options, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		options = append(options, mail.WithTLSPolicy(mail.NoTLS))
	}
	if cfg.SMTPUser != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, options...)
	if err != nil {
		return nil, errors.Wrap(err, "could not create smtp client")
	}
	return &SMTPMailer{client: client, from: cfg.SMTPFrom}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, notification shared.Notification) error {
	subject, body, err := Render(notification)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(notification.Recipient); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "could not send mail")
	}
	slog.Debug("notification sent", "kind", notification.Kind)
	return nil
}

// LogMailer renders the notification and logs it instead of sending it.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, notification shared.Notification) error {
	subject, _, err := Render(notification)
	if err != nil {
		return err
	}
	slog.Info("notification", "kind", notification.Kind, "subject", subject, "language", shared.MatchLanguage(notification.Language))
	return nil
}
