package model

type UserType string

const (
	Administrator UserType = "administrator"
	Recruiter     UserType = "company_recruiter"
	Candidate     UserType = "candidate"
)

// swagger:model User
type User struct {
	BaseModel
	Email        string   `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash string   `gorm:"size:100;not null" json:"-"`
	FirstName    string   `gorm:"size:100;not null" json:"firstName"`
	LastName     string   `gorm:"size:100;not null" json:"lastName"`
	UserType     UserType `gorm:"type:enum('administrator','company_recruiter','candidate');not null" json:"userType"`
	CompanyID    *uint    `gorm:"index;type:bigint unsigned" json:"companyId"`
	ResumeURL    string   `gorm:"size:255" json:"resumeUrl,omitempty"`
}

func (User) TableName() string {
	return "users"
}
