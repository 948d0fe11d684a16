package model

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	UserID       string    `firestore:"userid"`
	Name         string    `firestore:"name"`
	Email        string    `firestore:"email"`
	Password     string    `firestore:"password"`
	Role         string    `firestore:"role"`
	RefreshToken string    `firestore:"refreshtoken"` // bcrypt hash, empty when signed out
	CreatedAt    time.Time `firestore:"createdat"`
	UpdatedAt    time.Time `firestore:"updatedat"`
}
