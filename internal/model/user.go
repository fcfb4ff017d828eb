package model

import "time"

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

// Session binds a dashboard visitor to the API token issued at login or register.
type Session struct {
	ID        string
	Token     string
	User      User
	CreatedAt time.Time
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type UserResponse struct {
	User User `json:"user"`
}
