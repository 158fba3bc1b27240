package domain

import (
	"context"
	"time"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	College      string    `json:"college"`
	Department   *string   `json:"department,omitempty"`
	StudentID    *string   `json:"studentId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool   { return u != nil && u.Role == RoleAdmin }
func (u *User) IsStudent() bool { return u != nil && u.Role == RoleStudent }

type RegisterInput struct {
	Email      string  `validate:"required,email,max=254"`
	Password   string  `validate:"required,min=8,max=72"`
	Name       string  `validate:"required,max=100,valid_name"`
	Role       string  `validate:"required,user_role"`
	College    string  `validate:"required,max=200"`
	Department *string `validate:"omitempty,max=100"`
	StudentID  *string `validate:"omitempty,max=50"`
}

// ProfileUpdate carries the profile-edit fields. Nil means unchanged.
type ProfileUpdate struct {
	Name       *string `validate:"omitempty,min=1,max=100,valid_name"`
	Department *string `validate:"omitempty,max=100"`
	StudentID  *string `validate:"omitempty,max=50"`
}

type UserRepository interface {
	// Create returns ErrConflict when the email is taken.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	CountByCollegeAndRole(ctx context.Context, college, role string) (int64, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*User, string, error)
	Login(ctx context.Context, email, password string, meta LoginMeta) (*User, string, error)
	ResolveToken(ctx context.Context, token string) (*User, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*User, error)
}

// LoginMeta is request metadata used for throttling and security logging.
type LoginMeta struct {
	IP        string
	UserAgent string
	RequestID string
}
