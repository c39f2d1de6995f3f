package domain

import "time"

// User models a registered account. Email and username are stored in their
// normalized form (trimmed, lowercased) and are unique across the platform.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Fullname     string    `json:"fullname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// HRProfile is the role-specific extension record for HR accounts, keyed 1:1
// by user id.
type HRProfile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CandidateProfile is the role-specific extension record for candidate
// accounts, keyed 1:1 by user id.
type CandidateProfile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	YearsExperience int       `json:"years_experience,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
