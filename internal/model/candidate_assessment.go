package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CandidateAssessmentStatus string

const (
	StatusInvited    CandidateAssessmentStatus = "invited"
	StatusInProgress CandidateAssessmentStatus = "in_progress"
	StatusCompleted  CandidateAssessmentStatus = "completed"
	StatusExpired    CandidateAssessmentStatus = "expired"
)

// CandidateAssessment is one candidate's run through one assessment.
// The (candidate, assessment) pair is unique: a candidate is invited to a
// given assessment at most once.
//
// swagger:model CandidateAssessment
type CandidateAssessment struct {
	BaseModel
	CandidateID  uint                      `gorm:"uniqueIndex:idx_candidate_assessment_pair;type:bigint unsigned;not null" json:"candidateId"`
	AssessmentID uint                      `gorm:"uniqueIndex:idx_candidate_assessment_pair;type:bigint unsigned;not null" json:"assessmentId"`
	Status       CandidateAssessmentStatus `gorm:"type:enum('invited','in_progress','completed','expired');default:'invited'" json:"status"`
	InviteToken  string                    `gorm:"size:36;uniqueIndex" json:"inviteToken"`
	InvitedAt    time.Time                 `json:"invitedAt"`
	StartedAt    *time.Time                `json:"startedAt"`
	CompletedAt  *time.Time                `json:"completedAt"`
	Score        decimal.NullDecimal       `gorm:"type:decimal(5,2)" json:"score"`
	TotalPoints  *int                      `json:"totalPoints"`
}

func (CandidateAssessment) TableName() string {
	return "candidate_assessments"
}

// Terminal reports whether no transition may leave the current status.
func (ca *CandidateAssessment) Terminal() bool {
	return ca.Status == StatusCompleted || ca.Status == StatusExpired
}
