package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"jumatrek/shared/timezone"

	"github.com/rs/zerolog/log"
)

var replyTemplate = template.Must(template.New("reply").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #2d2d2d; max-width: 600px; margin: 0 auto;">
	<div style="background-color: #1b4332; padding: 24px; text-align: center;">
		<h1 style="color: #ffffff; margin: 0; font-size: 22px;">{{.BrandName}}</h1>
	</div>
	<div style="padding: 24px;">
		<p>Dear {{.RecipientName}},</p>
		{{if .Reference}}<p style="color: #555555;">Regarding: <strong>{{.Reference}}</strong></p>{{end}}
		<div style="background-color: #f5f5f5; border-left: 4px solid #1b4332; padding: 16px; margin: 16px 0; white-space: pre-wrap;">{{.Message}}</div>
		<p>Warm regards,<br/>{{.SenderName}}<br/>{{.BrandName}}</p>
	</div>
	<div style="background-color: #f0f0f0; padding: 16px; text-align: center; font-size: 12px; color: #888888;">
		&copy; {{.Year}} {{.BrandName}}. All rights reserved.
	</div>
</body>
</html>`))

type replyLetter struct {
	BrandName     string
	RecipientName string
	Reference     string
	Message       string
	SenderName    string
	Year          int
}

func renderReply(letter replyLetter) string {
	var buf bytes.Buffer

	err := replyTemplate.Execute(&buf, letter)
	if err != nil {
		log.Error().Err(err).Msg("[Mailer] Failed to render reply letter, falling back to plain body")

		return letter.Message
	}

	return buf.String()
}

// NewTripReplyEmail composes the admin reply to a custom trip request.
// destination is the human readable destination name from the request.
func NewTripReplyEmail(to, toName, destination, message, senderName, brandName string) Email {
	subject := fmt.Sprintf("Update on your Custom Trip Request: %s", destination)

	return Email{
		To:      to,
		ToName:  toName,
		Subject: subject,
		Body: renderReply(replyLetter{
			BrandName:     brandName,
			RecipientName: toName,
			Reference:     destination,
			Message:       message,
			SenderName:    senderName,
			Year:          timezone.Now().Year(),
		}),
		PlainBody: message,
	}
}

// NewInquiryReplyEmail composes the admin reply to a general inquiry.
func NewInquiryReplyEmail(to, toName, subject, message, senderName, brandName string) Email {
	return Email{
		To:      to,
		ToName:  toName,
		Subject: fmt.Sprintf("Re: %s", subject),
		Body: renderReply(replyLetter{
			BrandName:     brandName,
			RecipientName: toName,
			Reference:     subject,
			Message:       message,
			SenderName:    senderName,
			Year:          timezone.Now().Year(),
		}),
		PlainBody: message,
	}
}
