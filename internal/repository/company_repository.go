package repository

import (
	"hire_assess_backend/internal/model"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(company *model.Company) error
	FindByID(id uint) (*model.Company, error)
	List() ([]model.Company, error)
}

type companyRepository struct {
	DB *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{DB: db}
}

func (r *companyRepository) Create(company *model.Company) error {
	return r.DB.Create(company).Error
}

func (r *companyRepository) FindByID(id uint) (*model.Company, error) {
	var c model.Company
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *companyRepository) List() ([]model.Company, error) {
	var companies []model.Company
	err := r.DB.Find(&companies).Error
	return companies, err
}
