package models

import (
	"time"

	"gorm.io/datatypes"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// AdminUID is the synthetic admin identity. Admins are never stored in the
// users table; the session layer fabricates this identity on admin sign-in.
const AdminUID = "admin_user"

// User is a registered student account. Profile and Roadmaps are stored as
// JSONB documents on the row because both are replaced wholesale by the
// onboarding and personalize flows.
type User struct {
	ID             string         `json:"id" gorm:"primaryKey;size:64"`
	Email          string         `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordSecret string         `json:"-" gorm:"not null;size:255"`
	Role           UserRole       `json:"role" gorm:"not null;size:16"`
	Profile        datatypes.JSON `json:"profile"`
	Roadmaps       datatypes.JSON `json:"roadmaps"`

	MockTests []MockTestResult `json:"mock_tests" gorm:"foreignKey:UserID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Identity is the (uid, email, role) tuple describing a signed-in principal.
type Identity struct {
	UID   string   `json:"uid"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// StudentProfile is filled in during onboarding and absent until then.
type StudentProfile struct {
	GoalRole      string   `json:"goal_role"`
	GoalCompanies []string `json:"goal_companies"`
	Skills        []string `json:"skills"`
}

// UserDocument is the full per-user record handed to the portal UI.
type UserDocument struct {
	Email     string           `json:"email"`
	Role      UserRole         `json:"role"`
	Profile   *StudentProfile  `json:"profile"`
	Roadmaps  []Roadmap        `json:"roadmaps"`
	MockTests []MockTestResult `json:"mock_tests"`
}
