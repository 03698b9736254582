package model

type QuestionType string

const (
	MultipleChoice  QuestionType = "multiple_choice"
	CodingChallenge QuestionType = "coding_challenge"
	FreeText        QuestionType = "free_text"
)

// swagger:model Question
type Question struct {
	BaseModel
	Title        string       `gorm:"size:255;not null" json:"title"`
	Description  string       `gorm:"type:text;not null" json:"description"`
	QuestionType QuestionType `gorm:"type:enum('multiple_choice','coding_challenge','free_text');not null" json:"questionType"`
	// Options holds a JSON array of selectable choices, only meaningful for multiple_choice.
	Options       *string `gorm:"type:json" json:"options"`
	CorrectAnswer *string `gorm:"type:text" json:"correctAnswer,omitempty"`
	CompanyID     uint    `gorm:"index;type:bigint unsigned;not null" json:"companyId"`
	CreatedBy     uint    `gorm:"type:bigint unsigned;not null" json:"createdBy"`
}

func (Question) TableName() string {
	return "questions"
}
