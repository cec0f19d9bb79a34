package candidate

import (
	"time"

	"github.com/google/uuid"
)

type NoticeStatus string

const (
	NoticeStatusServing         NoticeStatus = "SERVING_NOTICE"
	NoticeStatusNotServing      NoticeStatus = "NOT_SERVING"
	NoticeStatusImmediateJoiner NoticeStatus = "IMMEDIATE_JOINER"
)

func ParseNoticeStatus(s string) (NoticeStatus, bool) {
	switch NoticeStatus(s) {
	case NoticeStatusServing, NoticeStatusNotServing, NoticeStatusImmediateJoiner:
		return NoticeStatus(s), true
	}
	return "", false
}

// Profile is the job-seeker profile, owned 1:1 by a user.
type Profile struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	NoticeStatus      *NoticeStatus
	IsServingNotice   *bool
	LastWorkingDay    *time.Time
	NoticePeriod      *int
	AvailableFrom     *time.Time
	ImmediateJoiner   *bool
	CurrentCompany    string
	CurrentCTC        *float64
	ExpectedCTC       *float64
	CurrentLocation   string
	PreferredLocation string
	TotalExperience   *int
	ResumeURL         string
}
