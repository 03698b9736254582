package service

import (
	"testing"

	"hire_assess_backend/internal/model"
	"hire_assess_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestAssessmentService_AddQuestion(t *testing.T) {
	assessment := &model.Assessment{
		BaseModel: model.BaseModel{ID: 3},
		Title:     "Backend Screen",
	}
	question := &model.Question{
		BaseModel:    model.BaseModel{ID: 5},
		QuestionType: model.MultipleChoice,
	}

	t.Run("links a question with an explicit point value", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		questionRepo := new(MockQuestionRepository)
		svc := NewAssessmentService(repo, questionRepo)

		repo.On("FindByID", uint(3)).Return(assessment, nil).Once()
		questionRepo.On("FindByID", uint(5)).Return(question, nil).Once()
		repo.On("FindQuestionLink", uint(3), uint(5)).Return(nil, gorm.ErrRecordNotFound).Once()
		repo.On("CreateQuestionLink", mock.AnythingOfType("*model.AssessmentQuestion")).Return(nil).Once()

		points := 10
		link, err := svc.AddQuestion(3, AddQuestionRequest{QuestionID: 5, OrderIndex: 2, Points: &points})

		assert.NoError(t, err)
		assert.Equal(t, 10, link.Points)
		assert.Equal(t, 2, link.OrderIndex)
		repo.AssertExpectations(t)
	})

	t.Run("defaults the point value to 1", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		questionRepo := new(MockQuestionRepository)
		svc := NewAssessmentService(repo, questionRepo)

		repo.On("FindByID", uint(3)).Return(assessment, nil).Once()
		questionRepo.On("FindByID", uint(5)).Return(question, nil).Once()
		repo.On("FindQuestionLink", uint(3), uint(5)).Return(nil, gorm.ErrRecordNotFound).Once()
		repo.On("CreateQuestionLink", mock.AnythingOfType("*model.AssessmentQuestion")).Return(nil).Once()

		link, err := svc.AddQuestion(3, AddQuestionRequest{QuestionID: 5})

		assert.NoError(t, err)
		assert.Equal(t, 1, link.Points)
	})

	t.Run("rejects linking the same question twice", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		questionRepo := new(MockQuestionRepository)
		svc := NewAssessmentService(repo, questionRepo)

		repo.On("FindByID", uint(3)).Return(assessment, nil).Once()
		questionRepo.On("FindByID", uint(5)).Return(question, nil).Once()
		repo.On("FindQuestionLink", uint(3), uint(5)).Return(&model.AssessmentQuestion{
			AssessmentID: 3,
			QuestionID:   5,
		}, nil).Once()

		_, err := svc.AddQuestion(3, AddQuestionRequest{QuestionID: 5})

		assert.ErrorIs(t, err, util.ErrQuestionAlreadyLinked)
		repo.AssertNotCalled(t, "CreateQuestionLink", mock.Anything)
	})

	t.Run("maps a duplicate-key insert to the link conflict", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		questionRepo := new(MockQuestionRepository)
		svc := NewAssessmentService(repo, questionRepo)

		repo.On("FindByID", uint(3)).Return(assessment, nil).Once()
		questionRepo.On("FindByID", uint(5)).Return(question, nil).Once()
		repo.On("FindQuestionLink", uint(3), uint(5)).Return(nil, gorm.ErrRecordNotFound).Once()
		repo.On("CreateQuestionLink", mock.AnythingOfType("*model.AssessmentQuestion")).Return(gorm.ErrDuplicatedKey).Once()

		_, err := svc.AddQuestion(3, AddQuestionRequest{QuestionID: 5})

		assert.ErrorIs(t, err, util.ErrQuestionAlreadyLinked)
	})

	t.Run("rejects an unknown question", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		questionRepo := new(MockQuestionRepository)
		svc := NewAssessmentService(repo, questionRepo)

		repo.On("FindByID", uint(3)).Return(assessment, nil).Once()
		questionRepo.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.AddQuestion(3, AddQuestionRequest{QuestionID: 99})

		assert.ErrorIs(t, err, util.ErrQuestionNotFound)
	})
}

func TestAssessmentService_UpdateStatus(t *testing.T) {
	t.Run("updates and returns the fresh row", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		svc := NewAssessmentService(repo, new(MockQuestionRepository))

		repo.On("UpdateStatus", uint(3), model.AssessmentActive).Return(int64(1), nil).Once()
		repo.On("FindByID", uint(3)).Return(&model.Assessment{
			BaseModel: model.BaseModel{ID: 3},
			Status:    model.AssessmentActive,
		}, nil).Once()

		a, err := svc.UpdateStatus(3, model.AssessmentActive)

		assert.NoError(t, err)
		assert.Equal(t, model.AssessmentActive, a.Status)
	})

	t.Run("reports a missing assessment", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		svc := NewAssessmentService(repo, new(MockQuestionRepository))

		repo.On("UpdateStatus", uint(404), model.AssessmentArchived).Return(int64(0), nil).Once()

		_, err := svc.UpdateStatus(404, model.AssessmentArchived)

		assert.ErrorIs(t, err, util.ErrAssessmentNotFound)
	})
}
