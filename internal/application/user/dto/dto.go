package dto

import (
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/mapper"
)

// UserDTO never carries the password hash.
type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:       u.ID(),
		Username: u.Username(),
		Email:    u.Email(),
		Role:     u.Role().String(),
		FullName: u.FullName(),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	return mapper.MapSlice(users, ToUserDTO)
}
