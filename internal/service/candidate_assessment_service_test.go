package service

import (
	"testing"
	"time"

	"hire_assess_backend/internal/model"
	"hire_assess_backend/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newCandidateAssessmentService(
	repo *MockCandidateAssessmentRepository,
	userRepo *MockUserRepository,
	assessmentRepo *MockAssessmentRepository,
	questionRepo *MockQuestionRepository,
) *CandidateAssessmentService {
	return NewCandidateAssessmentService(repo, userRepo, assessmentRepo, questionRepo, nil)
}

func TestCandidateAssessmentService_Invite(t *testing.T) {
	candidate := &model.User{
		BaseModel: model.BaseModel{ID: 7},
		Email:     "jane@example.com",
		UserType:  model.Candidate,
	}
	assessment := &model.Assessment{
		BaseModel: model.BaseModel{ID: 3},
		Title:     "Backend Screen",
		Status:    model.AssessmentActive,
	}

	t.Run("creates an invited run with the computed point total", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		userRepo := new(MockUserRepository)
		assessmentRepo := new(MockAssessmentRepository)
		svc := newCandidateAssessmentService(repo, userRepo, assessmentRepo, new(MockQuestionRepository))

		userRepo.On("FindByID", uint(7)).Return(candidate, nil).Once()
		assessmentRepo.On("FindByID", uint(3)).Return(assessment, nil).Once()
		repo.On("FindByPair", uint(7), uint(3)).Return(nil, gorm.ErrRecordNotFound).Once()
		assessmentRepo.On("SumQuestionPoints", uint(3)).Return(30, nil).Once()
		repo.On("Create", mock.AnythingOfType("*model.CandidateAssessment")).Run(func(args mock.Arguments) {
			args.Get(0).(*model.CandidateAssessment).ID = 11
		}).Return(nil).Once()

		ca, err := svc.Invite(7, 3)

		assert.NoError(t, err)
		assert.NotNil(t, ca)
		assert.Equal(t, uint(11), ca.ID)
		assert.Equal(t, model.StatusInvited, ca.Status)
		assert.NotEmpty(t, ca.InviteToken)
		assert.NotNil(t, ca.TotalPoints)
		assert.Equal(t, 30, *ca.TotalPoints)
		assert.False(t, ca.Score.Valid)
		repo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
		assessmentRepo.AssertExpectations(t)
	})

	t.Run("rejects a repeat invitation to the same assessment", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		userRepo := new(MockUserRepository)
		assessmentRepo := new(MockAssessmentRepository)
		svc := newCandidateAssessmentService(repo, userRepo, assessmentRepo, new(MockQuestionRepository))

		userRepo.On("FindByID", uint(7)).Return(candidate, nil).Once()
		assessmentRepo.On("FindByID", uint(3)).Return(assessment, nil).Once()
		repo.On("FindByPair", uint(7), uint(3)).Return(&model.CandidateAssessment{
			BaseModel:    model.BaseModel{ID: 11},
			CandidateID:  7,
			AssessmentID: 3,
			Status:       model.StatusInvited,
		}, nil).Once()

		ca, err := svc.Invite(7, 3)

		assert.ErrorIs(t, err, util.ErrAlreadyInvited)
		assert.Nil(t, ca)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("maps a duplicate-key insert to the invitation conflict", func(t *testing.T) {
		// Two recruiters race past the pre-check; the unique index decides.
		repo := new(MockCandidateAssessmentRepository)
		userRepo := new(MockUserRepository)
		assessmentRepo := new(MockAssessmentRepository)
		svc := newCandidateAssessmentService(repo, userRepo, assessmentRepo, new(MockQuestionRepository))

		userRepo.On("FindByID", uint(7)).Return(candidate, nil).Once()
		assessmentRepo.On("FindByID", uint(3)).Return(assessment, nil).Once()
		repo.On("FindByPair", uint(7), uint(3)).Return(nil, gorm.ErrRecordNotFound).Once()
		assessmentRepo.On("SumQuestionPoints", uint(3)).Return(30, nil).Once()
		repo.On("Create", mock.AnythingOfType("*model.CandidateAssessment")).Return(gorm.ErrDuplicatedKey).Once()

		_, err := svc.Invite(7, 3)

		assert.ErrorIs(t, err, util.ErrAlreadyInvited)
	})

	t.Run("rejects a user who is not a candidate", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		userRepo := new(MockUserRepository)
		svc := newCandidateAssessmentService(repo, userRepo, new(MockAssessmentRepository), new(MockQuestionRepository))

		userRepo.On("FindByID", uint(9)).Return(&model.User{
			BaseModel: model.BaseModel{ID: 9},
			UserType:  model.Recruiter,
		}, nil).Once()

		_, err := svc.Invite(9, 3)

		assert.ErrorIs(t, err, util.ErrCandidateNotFound)
	})

	t.Run("rejects a missing assessment", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		userRepo := new(MockUserRepository)
		assessmentRepo := new(MockAssessmentRepository)
		svc := newCandidateAssessmentService(repo, userRepo, assessmentRepo, new(MockQuestionRepository))

		userRepo.On("FindByID", uint(7)).Return(candidate, nil).Once()
		assessmentRepo.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.Invite(7, 99)

		assert.ErrorIs(t, err, util.ErrAssessmentNotFound)
	})
}

func TestCandidateAssessmentService_Start(t *testing.T) {
	t.Run("moves an invited run to in_progress", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), new(MockAssessmentRepository), new(MockQuestionRepository))

		invited := &model.CandidateAssessment{
			BaseModel: model.BaseModel{ID: 11},
			Status:    model.StatusInvited,
		}
		startedAt := time.Now()
		started := &model.CandidateAssessment{
			BaseModel: model.BaseModel{ID: 11},
			Status:    model.StatusInProgress,
			StartedAt: &startedAt,
		}

		repo.On("FindByID", uint(11)).Return(invited, nil).Once()
		repo.On("MarkStarted", uint(11), mock.AnythingOfType("time.Time")).Return(true, nil).Once()
		repo.On("FindByID", uint(11)).Return(started, nil).Once()

		ca, err := svc.Start(11)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusInProgress, ca.Status)
		assert.NotNil(t, ca.StartedAt)
		repo.AssertExpectations(t)
	})

	t.Run("rejects any non-invited source status", func(t *testing.T) {
		for _, status := range []model.CandidateAssessmentStatus{
			model.StatusInProgress,
			model.StatusCompleted,
			model.StatusExpired,
		} {
			repo := new(MockCandidateAssessmentRepository)
			svc := newCandidateAssessmentService(repo, new(MockUserRepository), new(MockAssessmentRepository), new(MockQuestionRepository))

			repo.On("FindByID", uint(11)).Return(&model.CandidateAssessment{
				BaseModel: model.BaseModel{ID: 11},
				Status:    status,
			}, nil).Once()

			_, err := svc.Start(11)

			assert.ErrorIs(t, err, util.ErrInvalidTransition, "status %s", status)
			repo.AssertNotCalled(t, "MarkStarted", mock.Anything, mock.Anything)
		}
	})

	t.Run("reports a lost concurrent transition as invalid", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), new(MockAssessmentRepository), new(MockQuestionRepository))

		repo.On("FindByID", uint(11)).Return(&model.CandidateAssessment{
			BaseModel: model.BaseModel{ID: 11},
			Status:    model.StatusInvited,
		}, nil).Once()
		repo.On("MarkStarted", uint(11), mock.AnythingOfType("time.Time")).Return(false, nil).Once()

		_, err := svc.Start(11)

		assert.ErrorIs(t, err, util.ErrInvalidTransition)
	})

	t.Run("rejects an unknown run", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), new(MockAssessmentRepository), new(MockQuestionRepository))

		repo.On("FindByID", uint(404)).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.Start(404)

		assert.ErrorIs(t, err, util.ErrCandidateRunNotFound)
	})
}

func TestCandidateAssessmentService_SubmitAnswer(t *testing.T) {
	run := &model.CandidateAssessment{
		BaseModel:    model.BaseModel{ID: 11},
		AssessmentID: 3,
		Status:       model.StatusInProgress,
	}
	link := &model.AssessmentQuestion{
		AssessmentID: 3,
		QuestionID:   5,
		Points:       20,
	}

	t.Run("grades a correct free-text answer at full points", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		assessmentRepo := new(MockAssessmentRepository)
		questionRepo := new(MockQuestionRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), assessmentRepo, questionRepo)

		repo.On("FindByID", uint(11)).Return(run, nil).Once()
		questionRepo.On("FindByID", uint(5)).Return(&model.Question{
			BaseModel:     model.BaseModel{ID: 5},
			QuestionType:  model.FreeText,
			CorrectAnswer: strPtr("paris"),
		}, nil).Once()
		assessmentRepo.On("FindQuestionLink", uint(3), uint(5)).Return(link, nil).Once()
		repo.On("UpsertAnswer", mock.AnythingOfType("*model.CandidateAnswer")).Return(nil).Once()

		answer, err := svc.SubmitAnswer(11, 5, " Paris ")

		assert.NoError(t, err)
		assert.NotNil(t, answer.IsCorrect)
		assert.True(t, *answer.IsCorrect)
		assert.True(t, answer.PointsEarned.Valid)
		assert.True(t, answer.PointsEarned.Decimal.Equal(decimal.NewFromInt(20)))
		repo.AssertExpectations(t)
	})

	t.Run("stores a wrong answer with zero points", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		assessmentRepo := new(MockAssessmentRepository)
		questionRepo := new(MockQuestionRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), assessmentRepo, questionRepo)

		repo.On("FindByID", uint(11)).Return(run, nil).Once()
		questionRepo.On("FindByID", uint(5)).Return(&model.Question{
			BaseModel:     model.BaseModel{ID: 5},
			QuestionType:  model.FreeText,
			CorrectAnswer: strPtr("paris"),
		}, nil).Once()
		assessmentRepo.On("FindQuestionLink", uint(3), uint(5)).Return(link, nil).Once()
		repo.On("UpsertAnswer", mock.AnythingOfType("*model.CandidateAnswer")).Return(nil).Once()

		answer, err := svc.SubmitAnswer(11, 5, "London")

		assert.NoError(t, err)
		assert.NotNil(t, answer.IsCorrect)
		assert.False(t, *answer.IsCorrect)
		assert.True(t, answer.PointsEarned.Valid)
		assert.True(t, answer.PointsEarned.Decimal.IsZero())
	})

	t.Run("leaves a coding challenge ungraded", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		assessmentRepo := new(MockAssessmentRepository)
		questionRepo := new(MockQuestionRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), assessmentRepo, questionRepo)

		repo.On("FindByID", uint(11)).Return(run, nil).Once()
		questionRepo.On("FindByID", uint(5)).Return(&model.Question{
			BaseModel:    model.BaseModel{ID: 5},
			QuestionType: model.CodingChallenge,
		}, nil).Once()
		assessmentRepo.On("FindQuestionLink", uint(3), uint(5)).Return(link, nil).Once()
		repo.On("UpsertAnswer", mock.AnythingOfType("*model.CandidateAnswer")).Return(nil).Once()

		answer, err := svc.SubmitAnswer(11, 5, "func main() {}")

		assert.NoError(t, err)
		assert.Nil(t, answer.IsCorrect)
		assert.False(t, answer.PointsEarned.Valid)
	})

	t.Run("rejects a question not linked into the assessment", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		assessmentRepo := new(MockAssessmentRepository)
		questionRepo := new(MockQuestionRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), assessmentRepo, questionRepo)

		repo.On("FindByID", uint(11)).Return(run, nil).Once()
		questionRepo.On("FindByID", uint(6)).Return(&model.Question{
			BaseModel:    model.BaseModel{ID: 6},
			QuestionType: model.FreeText,
		}, nil).Once()
		assessmentRepo.On("FindQuestionLink", uint(3), uint(6)).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.SubmitAnswer(11, 6, "whatever")

		assert.ErrorIs(t, err, util.ErrQuestionNotInAssessment)
		repo.AssertNotCalled(t, "UpsertAnswer", mock.Anything)
	})

	t.Run("rejects an unknown run with the same merged error", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), new(MockAssessmentRepository), new(MockQuestionRepository))

		repo.On("FindByID", uint(404)).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.SubmitAnswer(404, 5, "whatever")

		assert.ErrorIs(t, err, util.ErrQuestionNotInAssessment)
	})
}

func TestCandidateAssessmentService_Complete(t *testing.T) {
	t.Run("aggregates earned points into the final score", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		assessmentRepo := new(MockAssessmentRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), assessmentRepo, new(MockQuestionRepository))

		inProgress := &model.CandidateAssessment{
			BaseModel:    model.BaseModel{ID: 11},
			AssessmentID: 3,
			Status:       model.StatusInProgress,
		}
		completedAt := time.Now()
		total := 30
		completed := &model.CandidateAssessment{
			BaseModel:    model.BaseModel{ID: 11},
			AssessmentID: 3,
			Status:       model.StatusCompleted,
			CompletedAt:  &completedAt,
			Score:        decimal.NullDecimal{Decimal: decimal.NewFromInt(15), Valid: true},
			TotalPoints:  &total,
		}

		repo.On("FindByID", uint(11)).Return(inProgress, nil).Once()
		repo.On("SumPointsEarned", uint(11)).Return(decimal.NewFromInt(15), nil).Once()
		assessmentRepo.On("SumQuestionPoints", uint(3)).Return(30, nil).Once()
		repo.On("CompleteWithScore", uint(11), mock.AnythingOfType("time.Time"), decimal.NewFromInt(15), 30).Return(true, nil).Once()
		repo.On("FindByID", uint(11)).Return(completed, nil).Once()

		ca, err := svc.Complete(11)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, ca.Status)
		assert.True(t, ca.Score.Decimal.Equal(decimal.NewFromInt(15)))
		assert.Equal(t, 30, *ca.TotalPoints)
		repo.AssertExpectations(t)
		assessmentRepo.AssertExpectations(t)
	})

	t.Run("completes with a zero score when nothing was answered", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		assessmentRepo := new(MockAssessmentRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), assessmentRepo, new(MockQuestionRepository))

		inProgress := &model.CandidateAssessment{
			BaseModel:    model.BaseModel{ID: 12},
			AssessmentID: 3,
			Status:       model.StatusInProgress,
		}

		repo.On("FindByID", uint(12)).Return(inProgress, nil).Once()
		repo.On("SumPointsEarned", uint(12)).Return(decimal.Zero, nil).Once()
		assessmentRepo.On("SumQuestionPoints", uint(3)).Return(30, nil).Once()
		repo.On("CompleteWithScore", uint(12), mock.AnythingOfType("time.Time"), decimal.Zero, 30).Return(true, nil).Once()
		repo.On("FindByID", uint(12)).Return(inProgress, nil).Once()

		_, err := svc.Complete(12)

		assert.NoError(t, err)
	})

	t.Run("a second completion fails and keeps the stored score", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), new(MockAssessmentRepository), new(MockQuestionRepository))

		repo.On("FindByID", uint(11)).Return(&model.CandidateAssessment{
			BaseModel: model.BaseModel{ID: 11},
			Status:    model.StatusCompleted,
		}, nil).Once()

		_, err := svc.Complete(11)

		assert.ErrorIs(t, err, util.ErrAlreadyCompleted)
		repo.AssertNotCalled(t, "CompleteWithScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("an expired run cannot be completed", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), new(MockAssessmentRepository), new(MockQuestionRepository))

		repo.On("FindByID", uint(11)).Return(&model.CandidateAssessment{
			BaseModel: model.BaseModel{ID: 11},
			Status:    model.StatusExpired,
		}, nil).Once()

		_, err := svc.Complete(11)

		assert.ErrorIs(t, err, util.ErrInvalidTransition)
	})

	t.Run("a lost completion race surfaces as already completed", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		assessmentRepo := new(MockAssessmentRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), assessmentRepo, new(MockQuestionRepository))

		repo.On("FindByID", uint(11)).Return(&model.CandidateAssessment{
			BaseModel:    model.BaseModel{ID: 11},
			AssessmentID: 3,
			Status:       model.StatusInProgress,
		}, nil).Once()
		repo.On("SumPointsEarned", uint(11)).Return(decimal.NewFromInt(15), nil).Once()
		assessmentRepo.On("SumQuestionPoints", uint(3)).Return(30, nil).Once()
		repo.On("CompleteWithScore", uint(11), mock.AnythingOfType("time.Time"), decimal.NewFromInt(15), 30).Return(false, nil).Once()

		_, err := svc.Complete(11)

		assert.ErrorIs(t, err, util.ErrAlreadyCompleted)
	})
}

func TestCandidateAssessmentService_CandidateResult(t *testing.T) {
	t.Run("a miss yields no result and no error", func(t *testing.T) {
		repo := new(MockCandidateAssessmentRepository)
		svc := newCandidateAssessmentService(repo, new(MockUserRepository), new(MockAssessmentRepository), new(MockQuestionRepository))

		repo.On("FindByID", uint(404)).Return(nil, gorm.ErrRecordNotFound).Once()

		ca, err := svc.CandidateResult(404)

		assert.NoError(t, err)
		assert.Nil(t, ca)
	})
}
