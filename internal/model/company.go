package model

// swagger:model Company
type Company struct {
	BaseModel
	Name   string  `gorm:"size:255;not null" json:"name"`
	Domain *string `gorm:"size:255" json:"domain"`
}

func (Company) TableName() string {
	return "companies"
}
