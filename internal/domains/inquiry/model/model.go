package model

import (
	"jumatrek/shared/model"
	"time"
)

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID                  = "id"
	FieldUserID              = "user_id"
	FieldName                = "name"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldSubject             = "subject"
	FieldMessage             = "message"
	FieldStatus              = "status"
	FieldLastReplyText       = "last_reply_text"
	FieldLastReplySentAt     = "last_reply_sent_at"
	FieldLastReplyAdminEmail = "last_reply_admin_email"
	FieldLastReplyAdminName  = "last_reply_admin_name"
)

const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

var Statuses = []string{StatusNew, StatusRead, StatusReplied, StatusArchived}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}

	return false
}

// Inquiry is a contact form message. UserID is nil for anonymous visitors.
type Inquiry struct {
	ID                  string     `db:"id"`
	UserID              *string    `db:"user_id"`
	Name                string     `db:"name"`
	Email               string     `db:"email"`
	Phone               string     `db:"phone"`
	Subject             string     `db:"subject"`
	Message             string     `db:"message"`
	Status              string     `db:"status"`
	LastReplyText       *string    `db:"last_reply_text"`
	LastReplySentAt     *time.Time `db:"last_reply_sent_at"`
	LastReplyAdminEmail *string    `db:"last_reply_admin_email"`
	LastReplyAdminName  *string    `db:"last_reply_admin_name"`
	model.Metadata
}
