package model

import (
	"time"
	"tourdesk/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password_hash"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
)

type User struct {
	ID           int64      `db:"id"`
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Role         string     `db:"role"`
	LastLogin    *time.Time `db:"last_login"`
	model.Metadata
}
