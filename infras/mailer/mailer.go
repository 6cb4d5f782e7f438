package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"jumatrek/config"
	"jumatrek/infras/otel"
	"jumatrek/shared/constant"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"
)

// Email is a single outbound message. Body carries HTML, PlainBody the
// text alternative shown by clients that do not render HTML.
type Email struct {
	To        string
	ToName    string
	Subject   string
	Body      string
	PlainBody string
}

type Mailer interface {
	Send(ctx context.Context, email Email) (err error)
}

type smtpMailer struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	return &smtpMailer{
		config: config,
		otel:   otel,
	}
}

func (m *smtpMailer) Send(ctx context.Context, email Email) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	msg := gomail.NewMsg()

	err = msg.FromFormat(m.config.Mailer.FromName, m.config.Mailer.From)
	if err != nil {
		log.Error().Err(err).Str("from", m.config.Mailer.From).Msg("[Mailer - Send] Invalid sender address")

		return err
	}

	err = msg.AddToFormat(email.ToName, email.To)
	if err != nil {
		log.Error().Err(err).Str("to", email.To).Msg("[Mailer - Send] Invalid recipient address")

		return err
	}

	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, email.Body)
	if email.PlainBody != "" {
		msg.AddAlternativeString(gomail.TypeTextPlain, email.PlainBody)
	}

	client, err := gomail.NewClient(
		m.config.Mailer.Host,
		gomail.WithPort(m.config.Mailer.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.config.Mailer.Username),
		gomail.WithPassword(m.config.Mailer.Password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		log.Error().Err(err).Msg("[Mailer - Send] Failed to create SMTP client")

		return err
	}

	err = client.DialAndSendWithContext(ctx, msg)
	if err != nil {
		log.Error().Err(err).Str("to", email.To).Str("subject", email.Subject).Msg("[Mailer - Send] Failed to send email")

		return err
	}

	log.Info().Str("to", email.To).Str("subject", email.Subject).Msg("[Mailer - Send] Email sent")

	return nil
}
