package repository

import (
	"hire_assess_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id uint) (*model.Assessment, error)
	ListByCompany(companyID uint) ([]model.Assessment, error)
	UpdateStatus(id uint, status model.AssessmentStatus) (int64, error)
	CreateQuestionLink(link *model.AssessmentQuestion) error
	FindQuestionLink(assessmentID, questionID uint) (*model.AssessmentQuestion, error)
	ListQuestionLinks(assessmentID uint) ([]model.AssessmentQuestion, error)
	SumQuestionPoints(assessmentID uint) (int, error)
}

type assessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{DB: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	return r.DB.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var a model.Assessment
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepository) ListByCompany(companyID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.DB.Where("company_id = ?", companyID).Order("created_at DESC").Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) UpdateStatus(id uint, status model.AssessmentStatus) (int64, error) {
	res := r.DB.Model(&model.Assessment{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *assessmentRepository) CreateQuestionLink(link *model.AssessmentQuestion) error {
	return r.DB.Create(link).Error
}

func (r *assessmentRepository) FindQuestionLink(assessmentID, questionID uint) (*model.AssessmentQuestion, error) {
	var link model.AssessmentQuestion
	err := r.DB.Where("assessment_id = ? AND question_id = ?", assessmentID, questionID).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *assessmentRepository) ListQuestionLinks(assessmentID uint) ([]model.AssessmentQuestion, error) {
	var links []model.AssessmentQuestion
	err := r.DB.Where("assessment_id = ?", assessmentID).Order("order_index ASC").Find(&links).Error
	return links, err
}

// SumQuestionPoints returns the configured point total across an
// assessment's question links, 0 when it has none.
func (r *assessmentRepository) SumQuestionPoints(assessmentID uint) (int, error) {
	var total int
	err := r.DB.Model(&model.AssessmentQuestion{}).
		Where("assessment_id = ?", assessmentID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return total, err
}
