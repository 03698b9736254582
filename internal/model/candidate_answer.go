package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CandidateAnswer records one graded submission. Resubmitting the same
// question overwrites the earlier row, keyed on (candidate_assessment_id,
// question_id), so the aggregate never double-counts.
//
// IsCorrect and PointsEarned stay null for questions without a canonical
// correct answer.
//
// swagger:model CandidateAnswer
type CandidateAnswer struct {
	BaseModel
	CandidateAssessmentID uint                `gorm:"uniqueIndex:idx_answer_per_question;type:bigint unsigned;not null" json:"candidateAssessmentId"`
	QuestionID            uint                `gorm:"uniqueIndex:idx_answer_per_question;type:bigint unsigned;not null" json:"questionId"`
	Answer                string              `gorm:"type:text;not null" json:"answer"`
	IsCorrect             *bool               `json:"isCorrect"`
	PointsEarned          decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"pointsEarned"`
	AnsweredAt            time.Time           `json:"answeredAt"`
}

func (CandidateAnswer) TableName() string {
	return "candidate_answers"
}
