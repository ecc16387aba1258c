package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso dos usuários
const (
	RoleAdmin      = 1
	RoleAdvertiser = 2
	RolePublisher  = 3
)

type User struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Lastname          string     `json:"lastname"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"password"`
	Active            bool       `json:"active"`
	RoleID            int        `json:"role_id"`
	Staff             bool       `json:"staff"`
	Deleted           bool       `json:"deleted"`
	DeletedAt         *time.Time `json:"deleted_at"`
	LinkedPublishers  []string   `json:"linked_publishers"`
	LinkedAdvertisers []string   `json:"linked_advertisers"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	Email    *string `json:"email"`
	Active   *bool   `json:"active"`
	RoleID   *int    `json:"role_id"`
	Deleted  *bool   `json:"deleted"`
}

type Claims struct {
	UserID          int
	UserName        string
	UserEmail       string
	UserActive      bool
	UserRoleID      int
	UserStaff       bool
	UserPublishers  []string
	UserAdvertisers []string
	jwt.RegisteredClaims
}

// HasPublisher indica se o usuário está vinculado ao publisher informado
func (c *Claims) HasPublisher(slug string) bool {
	for _, s := range c.UserPublishers {
		if s == slug {
			return true
		}
	}
	return false
}

// HasAdvertiser indica se o usuário está vinculado ao anunciante informado
func (c *Claims) HasAdvertiser(slug string) bool {
	for _, s := range c.UserAdvertisers {
		if s == slug {
			return true
		}
	}
	return false
}
