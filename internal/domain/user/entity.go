package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleRecruiterAdmin Role = "RECRUITER_ADMIN"
	RoleRecruiter      Role = "RECRUITER"
	RoleJobSeeker      Role = "JOB_SEEKER"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleRecruiterAdmin, RoleRecruiter, RoleJobSeeker:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the resolved caller identity passed explicitly into usecases.
// It is never read from ambient context.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) CanSearchCandidates() bool {
	switch p.Role {
	case RoleAdmin, RoleRecruiterAdmin, RoleRecruiter:
		return true
	}
	return false
}
