package model

import (
	"jumatrek/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldContact = "contact"
	FieldRole    = "role"
)

type User struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Contact string `db:"contact"`
	Role    string `db:"role"`
	model.Metadata
}
