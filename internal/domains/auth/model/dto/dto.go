package dto

import (
	"lagoon/infras/jwt"
	userModel "lagoon/internal/domains/user/model"
	"lagoon/shared/constant"
	gModel "lagoon/shared/model"
	"lagoon/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username     string  `json:"username"                validate:"required,min=3,max=50,lagoon"`
	Email        string  `json:"email"                   validate:"required,email"`
	Password     string  `json:"password"                validate:"required,min=8"`
	Role         string  `json:"role"                    validate:"omitempty,oneof=customer affiliate"`
	FullName     *string `json:"full_name,omitempty"`
	Phone        *string `json:"phone,omitempty"         validate:"omitempty,max=20"`
	Address      *string `json:"address,omitempty"       validate:"omitempty,max=200"`
	BusinessName *string `json:"business_name,omitempty" validate:"omitempty,max=100"`
}

func (r *RegisterRequest) ToUserModel(creator string, hashedPassword string) userModel.User {
	role := r.Role
	if role == "" {
		role = constant.RoleCustomer
	}

	return userModel.User{
		ID:           uuid.NewString(),
		Username:     r.Username,
		Email:        r.Email,
		Password:     hashedPassword,
		Role:         role,
		FullName:     r.FullName,
		Phone:        r.Phone,
		Address:      r.Address,
		BusinessName: r.BusinessName,
		IsVerified:   false,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  creator,
			ModifiedBy: creator,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
