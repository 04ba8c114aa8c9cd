package user

import (
	"fmt"
	"strings"

	vo "helpdesk/internal/domain/user/valueobjects"
)

// User holds an account in the helpdesk. The password field stores a bcrypt
// hash; hashing happens in the application layer so the domain stays free of
// crypto dependencies.
type User struct {
	id           uint
	username     string
	passwordHash string
	email        string
	role         vo.Role
	fullName     string
}

func NewUser(
	username string,
	passwordHash string,
	email string,
	role vo.Role,
	fullName string,
) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if role == "" {
		role = vo.RoleAgent
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if len(fullName) == 0 {
		return nil, fmt.Errorf("full name is required")
	}

	return &User{
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		role:         role,
		fullName:     fullName,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	passwordHash string,
	email string,
	role vo.Role,
	fullName string,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		role:         role,
		fullName:     fullName,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() vo.Role {
	return u.role
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) ChangeRole(role vo.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	return nil
}

func (u *User) ChangeEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}
	u.email = email
	return nil
}

func (u *User) ChangeFullName(fullName string) error {
	if len(fullName) == 0 {
		return fmt.Errorf("full name is required")
	}
	u.fullName = fullName
	return nil
}

func (u *User) ChangePasswordHash(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = passwordHash
	return nil
}
