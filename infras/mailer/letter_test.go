package mailer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"jumatrek/infras/mailer"
)

func TestNewTripReplyEmail(t *testing.T) {
	email := mailer.NewTripReplyEmail(
		"jane@example.com",
		"Jane Doe",
		"Everest Base Camp",
		"We have availability in May.",
		"JumaTrek Support",
		"JumaTrek",
	)

	assert.Equal(t, "jane@example.com", email.To)
	assert.Equal(t, "Jane Doe", email.ToName)
	assert.Equal(t, "Update on your Custom Trip Request: Everest Base Camp", email.Subject)
	assert.Contains(t, email.Body, "Dear Jane Doe")
	assert.Contains(t, email.Body, "Everest Base Camp")
	assert.Contains(t, email.Body, "We have availability in May.")
	assert.Contains(t, email.Body, "JumaTrek Support")
	assert.Equal(t, "We have availability in May.", email.PlainBody)
}

func TestNewInquiryReplyEmail(t *testing.T) {
	email := mailer.NewInquiryReplyEmail(
		"jane@example.com",
		"Jane Doe",
		"Permit question",
		"Yes, a TIMS card is required.",
		"JumaTrek Support",
		"JumaTrek",
	)

	assert.Equal(t, "Re: Permit question", email.Subject)
	assert.Contains(t, email.Body, "Permit question")
	assert.Contains(t, email.Body, "Yes, a TIMS card is required.")
}

func TestReplyLetterEscapesMarkup(t *testing.T) {
	email := mailer.NewInquiryReplyEmail(
		"jane@example.com",
		"Jane Doe",
		"Permit question",
		"<script>alert(1)</script>",
		"JumaTrek Support",
		"JumaTrek",
	)

	assert.False(t, strings.Contains(email.Body, "<script>"))
	assert.Contains(t, email.Body, "&lt;script&gt;")
}
