package dto

import (
	"lagoon/internal/domains/user/model"
	"lagoon/shared"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	gModel "lagoon/shared/model"
	"lagoon/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username     string  `json:"username"                validate:"required,min=3,max=50,lagoon"`
	Email        string  `json:"email"                   validate:"required,email"`
	Password     string  `json:"password"                validate:"required,min=8"`
	Role         string  `json:"role"                    validate:"omitempty,oneof=customer affiliate admin"`
	FullName     *string `json:"full_name,omitempty"`
	Phone        *string `json:"phone,omitempty"         validate:"omitempty,max=20"`
	Address      *string `json:"address,omitempty"       validate:"omitempty,max=200"`
	BusinessName *string `json:"business_name,omitempty" validate:"omitempty,max=100"`
	ProfileImage *string `json:"profile_image,omitempty"`
	IsVerified   *bool   `json:"is_verified,omitempty"`
}

func (r *CreateUserRequest) ToModel(creator string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleCustomer
	}

	isVerified := false
	if r.IsVerified != nil {
		isVerified = *r.IsVerified
	}

	return model.User{
		ID:           uuid.NewString(),
		Username:     r.Username,
		Email:        r.Email,
		Password:     hashedPassword,
		Role:         role,
		FullName:     r.FullName,
		Phone:        r.Phone,
		Address:      r.Address,
		BusinessName: r.BusinessName,
		ProfileImage: r.ProfileImage,
		IsVerified:   isVerified,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  creator,
			ModifiedBy: creator,
		},
	}
}

type UserResponse struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	FullName     *string `json:"full_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	BusinessName *string `json:"business_name,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	IsVerified   bool    `json:"is_verified"`
	LastLogin    *string `json:"last_login,omitempty"`
	Active       bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.Address = model.Address
	r.BusinessName = model.BusinessName
	r.ProfileImage = model.ProfileImage
	r.IsVerified = model.IsVerified
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Role         *string `db:"role"          json:"role,omitempty"          validate:"omitempty,oneof=customer affiliate admin"`
	FullName     *string `db:"full_name"     json:"full_name,omitempty"`
	Phone        *string `db:"phone"         json:"phone,omitempty"         validate:"omitempty,max=20"`
	Address      *string `db:"address"       json:"address,omitempty"       validate:"omitempty,max=200"`
	BusinessName *string `db:"business_name" json:"business_name,omitempty" validate:"omitempty,max=100"`
	ProfileImage *string `db:"profile_image" json:"profile_image,omitempty"`
	IsVerified   *bool   `db:"is_verified"   json:"is_verified,omitempty"`
	Active       *bool   `db:"active"        json:"active,omitempty"`
}

type UpdateProfileRequest struct {
	FullName     *string `db:"full_name"     json:"full_name,omitempty"`
	Phone        *string `db:"phone"         json:"phone,omitempty"         validate:"omitempty,max=20"`
	Address      *string `db:"address"       json:"address,omitempty"       validate:"omitempty,max=200"`
	BusinessName *string `db:"business_name" json:"business_name,omitempty" validate:"omitempty,max=100"`
	ProfileImage *string `db:"profile_image" json:"profile_image,omitempty"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
