package model

import (
	"time"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

type UserProfile struct {
	ID           string   `json:"id,omitempty"`
	FullName     string   `json:"fullName"`
	Username     string   `json:"username"`
	DateOfBirth  string   `json:"dateOfBirth,omitempty"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Friends      []string `json:"friends"`
	DateFields
}
