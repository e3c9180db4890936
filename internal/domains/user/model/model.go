package model

import "lagoon/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldRole         = "role"
	FieldFullName     = "full_name"
	FieldPhone        = "phone"
	FieldAddress      = "address"
	FieldBusinessName = "business_name"
	FieldProfileImage = "profile_image"
	FieldIsVerified   = "is_verified"
	FieldLastLogin    = "last_login"
	FieldActive       = "active"
)

type User struct {
	ID       string  `db:"id"`
	Username string  `db:"username"`
	Email    string  `db:"email"`
	Password string  `db:"password"`
	Role     string  `db:"role"`
	FullName *string `db:"full_name"`
	Phone    *string `db:"phone"`
	Address  *string `db:"address"`

	// BusinessName is set only for affiliate accounts. It is what booking
	// snapshots display as the affiliate name.
	BusinessName *string `db:"business_name"`

	ProfileImage *string `db:"profile_image"`
	IsVerified   bool    `db:"is_verified"`
	LastLogin    *string `db:"last_login"`
	Active       bool    `db:"active"`
	model.Metadata
}

// DisplayName prefers the affiliate business name, falling back to the
// personal name and finally the username.
func (u User) DisplayName() string {
	if u.BusinessName != nil && *u.BusinessName != "" {
		return *u.BusinessName
	}

	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}

	return u.Username
}

// ContactPhone returns the profile phone or an empty string.
func (u User) ContactPhone() string {
	if u.Phone == nil {
		return ""
	}

	return *u.Phone
}
