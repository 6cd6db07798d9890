package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	phone        *string
	passwordHash string
	role         Role
	status       Status
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name Name, email Email, phone *string, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		status:       StatusActive,
	}
}

func ReconstructUser(
	id uuid.UUID,
	name Name,
	email Email,
	phone *string,
	passwordHash string,
	role Role,
	status Status,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		status:       status,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) IsActive() bool {
	return u.status == StatusActive
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Name() Name              { return u.name }
func (u *User) Email() Email            { return u.email }
func (u *User) Phone() *string          { return u.phone }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() Role              { return u.role }
func (u *User) Status() Status          { return u.status }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
