package model

type AssessmentStatus string

const (
	AssessmentDraft    AssessmentStatus = "draft"
	AssessmentActive   AssessmentStatus = "active"
	AssessmentArchived AssessmentStatus = "archived"
)

// swagger:model Assessment
type Assessment struct {
	BaseModel
	Title            string           `gorm:"size:255;not null" json:"title"`
	Description      *string          `gorm:"type:text" json:"description"`
	CompanyID        uint             `gorm:"index;type:bigint unsigned;not null" json:"companyId"`
	CreatedBy        uint             `gorm:"type:bigint unsigned;not null" json:"createdBy"`
	Status           AssessmentStatus `gorm:"type:enum('draft','active','archived');default:'draft'" json:"status"`
	TimeLimitMinutes *int             `json:"timeLimitMinutes"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// AssessmentQuestion links a question into an assessment with its position
// and point value. A question may appear in an assessment at most once.
type AssessmentQuestion struct {
	BaseModel
	AssessmentID uint `gorm:"uniqueIndex:idx_assessment_question;type:bigint unsigned;not null" json:"assessmentId"`
	QuestionID   uint `gorm:"uniqueIndex:idx_assessment_question;type:bigint unsigned;not null" json:"questionId"`
	OrderIndex   int  `gorm:"not null" json:"orderIndex"`
	Points       int  `gorm:"default:1;not null" json:"points"`
}

func (AssessmentQuestion) TableName() string {
	return "assessment_questions"
}
