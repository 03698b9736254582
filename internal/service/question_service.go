package service

import (
	"errors"

	"hire_assess_backend/internal/model"
	"hire_assess_backend/internal/repository"
	"hire_assess_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	Repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

type QuestionRequest struct {
	Title         string             `json:"title" binding:"required"`
	Description   string             `json:"description" binding:"required"`
	QuestionType  model.QuestionType `json:"questionType" binding:"required,oneof=multiple_choice coding_challenge free_text"`
	Options       *string            `json:"options"`
	CorrectAnswer *string            `json:"correctAnswer"`
	CompanyID     uint               `json:"companyId" binding:"required"`
	CreatedBy     uint               `json:"createdBy" binding:"required"`
}

func (s *QuestionService) CreateQuestion(req QuestionRequest) (*model.Question, error) {
	q := &model.Question{
		Title:         req.Title,
		Description:   req.Description,
		QuestionType:  req.QuestionType,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		CompanyID:     req.CompanyID,
		CreatedBy:     req.CreatedBy,
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) GetQuestion(id uint) (*model.Question, error) {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) ListQuestions(companyID uint) ([]model.Question, error) {
	return s.Repo.ListByCompany(companyID)
}
