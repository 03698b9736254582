package repository

import (
	"hire_assess_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	ListByCompany(companyID uint) ([]model.Question, error)
}

type questionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{DB: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	if err := r.DB.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) ListByCompany(companyID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("company_id = ?", companyID).Find(&questions).Error
	return questions, err
}
