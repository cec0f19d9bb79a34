package job

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeFullTime   Type = "FULL_TIME"
	TypePartTime   Type = "PART_TIME"
	TypeInternship Type = "INTERNSHIP"
	TypeContract   Type = "CONTRACT"
)

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

// ParseType maps a wire value to a job type. Empty input means absent.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeFullTime, TypePartTime, TypeInternship, TypeContract:
		return Type(s), true
	}
	return "", false
}

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusOpen, StatusClosed:
		return Status(s), true
	}
	return "", false
}

type Job struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Location        string
	Industry        string
	Salary          *float64
	JobType         Type
	MinExperience   int
	MaxExperience   *int
	Status          Status
	NoticePref      string
	MaxNoticePeriod *int
	LWDPreferred    bool
	ViewCount       int64
	CompanyID       uuid.UUID
	CreatedByID     uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Deleted         bool
	DeletedAt       *time.Time
}

// CompanySummary is the eagerly resolved company projection attached to every
// job read.
type CompanySummary struct {
	ID   uuid.UUID
	Name string
	Logo string
}
