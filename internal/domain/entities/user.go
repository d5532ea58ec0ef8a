package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents portal login roles
type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleAssociate UserRole = "ASSOCIATE"
)

// User represents a portal login. Associates carry a link to their associate
// record; administrators each have their own credentials.
type User struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	PasswordHash string      `json:"-"`
	Role         UserRole    `json:"role"`
	AssociateID  null.String `json:"associateId,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	DeletedAt    null.Time   `json:"-"`
}

// RegisterInput represents input for associate self-service registration
type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	ShopName string `json:"shopName" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string     `json:"accessToken,omitempty"`
	RefreshToken string     `json:"refreshToken,omitempty"`
	SessionID    string     `json:"sessionId,omitempty"`
	User         *User      `json:"user"`
	Associate    *Associate `json:"associate,omitempty"`
}
