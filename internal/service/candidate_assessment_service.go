package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hire_assess_backend/internal/model"
	"hire_assess_backend/internal/repository"
	"hire_assess_backend/internal/util"
	"hire_assess_backend/pkg/logger"
	"hire_assess_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	resultsCacheKeyPrefix = "assessment:results:"
	resultsCacheTTL       = 5 * time.Minute
)

// CandidateAssessmentService drives a candidate's run through an assessment:
// invitation, the invited → in_progress → completed state machine, answer
// grading, score aggregation and the expiry sweep.
type CandidateAssessmentService struct {
	Repo           repository.CandidateAssessmentRepository
	UserRepo       repository.UserRepository
	AssessmentRepo repository.AssessmentRepository
	QuestionRepo   repository.QuestionRepository
	Redis          *redis.Client
}

func NewCandidateAssessmentService(
	repo repository.CandidateAssessmentRepository,
	userRepo repository.UserRepository,
	assessmentRepo repository.AssessmentRepository,
	questionRepo repository.QuestionRepository,
	rdb *redis.Client,
) *CandidateAssessmentService {
	return &CandidateAssessmentService{
		Repo:           repo,
		UserRepo:       userRepo,
		AssessmentRepo: assessmentRepo,
		QuestionRepo:   questionRepo,
		Redis:          rdb,
	}
}

// Invite creates the candidate assessment in the invited state. A candidate
// can hold invitations to many assessments, but at most one per assessment;
// a repeat invitation is rejected, never silently ignored. The composite
// unique index on (candidate_id, assessment_id) backs the check against
// concurrent inviters.
func (s *CandidateAssessmentService) Invite(candidateID, assessmentID uint) (*model.CandidateAssessment, error) {
	candidate, err := s.UserRepo.FindByID(candidateID)
	if err != nil || candidate.UserType != model.Candidate {
		return nil, util.ErrCandidateNotFound
	}

	if _, err := s.AssessmentRepo.FindByID(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}

	if _, err := s.Repo.FindByPair(candidateID, assessmentID); err == nil {
		return nil, util.ErrAlreadyInvited
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	totalPoints, err := s.AssessmentRepo.SumQuestionPoints(assessmentID)
	if err != nil {
		return nil, err
	}

	ca := &model.CandidateAssessment{
		CandidateID:  candidateID,
		AssessmentID: assessmentID,
		Status:       model.StatusInvited,
		InviteToken:  uuid.New().String(),
		InvitedAt:    time.Now(),
		TotalPoints:  &totalPoints,
	}
	if err := s.Repo.Create(ca); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyInvited
		}
		return nil, err
	}

	s.invalidateResults(assessmentID)
	monitoring.AssessmentTransitions.WithLabelValues(string(model.StatusInvited)).Inc()
	logger.Log.Info("candidate invited",
		zap.Uint("candidateId", candidateID),
		zap.Uint("assessmentId", assessmentID),
		zap.Uint("candidateAssessmentId", ca.ID))

	return ca, nil
}

// Start moves an invited run to in_progress and stamps started_at. Any other
// source status is rejected: completed and expired are terminal, and an
// in_progress run must not have its start time rewritten.
func (s *CandidateAssessmentService) Start(caID uint) (*model.CandidateAssessment, error) {
	ca, err := s.Repo.FindByID(caID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCandidateRunNotFound
		}
		return nil, err
	}

	if ca.Status != model.StatusInvited {
		return nil, util.ErrInvalidTransition
	}

	ok, err := s.Repo.MarkStarted(caID, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the race against a concurrent transition.
		return nil, util.ErrInvalidTransition
	}

	monitoring.AssessmentTransitions.WithLabelValues(string(model.StatusInProgress)).Inc()

	return s.Repo.FindByID(caID)
}

// SubmitAnswer grades one submission and stores it. The question must be
// linked into the assessment the run references; when any part of that
// triple fails to resolve, the caller gets the single merged not-found
// error. The run's status and score are untouched — aggregation happens at
// completion.
func (s *CandidateAssessmentService) SubmitAnswer(caID, questionID uint, answer string) (*model.CandidateAnswer, error) {
	ca, err := s.Repo.FindByID(caID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotInAssessment
		}
		return nil, err
	}

	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotInAssessment
		}
		return nil, err
	}

	link, err := s.AssessmentRepo.FindQuestionLink(ca.AssessmentID, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotInAssessment
		}
		return nil, err
	}

	isCorrect, pointsEarned := GradeAnswer(question.CorrectAnswer, answer, link.Points)

	row := &model.CandidateAnswer{
		CandidateAssessmentID: caID,
		QuestionID:            questionID,
		Answer:                answer,
		IsCorrect:             isCorrect,
		PointsEarned:          pointsEarned,
		AnsweredAt:            time.Now(),
	}
	if err := s.Repo.UpsertAnswer(row); err != nil {
		return nil, err
	}

	return row, nil
}

// Complete aggregates the run's earned points into its final score. A second
// completion fails and leaves the stored record unchanged; the conditional
// update in the repository holds that guarantee under concurrent callers
// too. The point total is recomputed from the assessment's question links so
// reviewers always see score against the real maximum.
func (s *CandidateAssessmentService) Complete(caID uint) (*model.CandidateAssessment, error) {
	ca, err := s.Repo.FindByID(caID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCandidateRunNotFound
		}
		return nil, err
	}

	if ca.Status == model.StatusCompleted {
		return nil, util.ErrAlreadyCompleted
	}
	if ca.Status == model.StatusExpired {
		return nil, util.ErrInvalidTransition
	}

	score, err := s.Repo.SumPointsEarned(caID)
	if err != nil {
		return nil, err
	}

	totalPoints, err := s.AssessmentRepo.SumQuestionPoints(ca.AssessmentID)
	if err != nil {
		return nil, err
	}

	ok, err := s.Repo.CompleteWithScore(caID, time.Now(), score, totalPoints)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrAlreadyCompleted
	}

	s.invalidateResults(ca.AssessmentID)
	monitoring.AssessmentTransitions.WithLabelValues(string(model.StatusCompleted)).Inc()
	logger.Log.Info("candidate assessment completed",
		zap.Uint("candidateAssessmentId", caID),
		zap.String("score", score.StringFixed(2)))

	return s.Repo.FindByID(caID)
}

// AssessmentResults lists every candidate run of an assessment, cached in
// redis for a short window and invalidated on invite and completion.
func (s *CandidateAssessmentService) AssessmentResults(assessmentID uint) ([]model.CandidateAssessment, error) {
	key := fmt.Sprintf("%s%d", resultsCacheKeyPrefix, assessmentID)

	if s.Redis != nil {
		if val, err := s.Redis.Get(context.Background(), key).Result(); err == nil {
			var cached []model.CandidateAssessment
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	cas, err := s.Repo.ListByAssessment(assessmentID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(cas); err == nil {
			s.Redis.Set(context.Background(), key, payload, resultsCacheTTL)
		}
	}

	return cas, nil
}

// ResultRows returns results joined with candidate identity for recruiter
// views and the CSV export.
func (s *CandidateAssessmentService) ResultRows(assessmentID uint) ([]repository.AssessmentResultRow, error) {
	return s.Repo.ListResultRows(assessmentID)
}

// CandidateResult fetches one run; a miss yields (nil, nil), not an error.
func (s *CandidateAssessmentService) CandidateResult(caID uint) (*model.CandidateAssessment, error) {
	ca, err := s.Repo.FindByID(caID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ca, nil
}

// CandidateAssessments lists every run held by one candidate.
func (s *CandidateAssessmentService) CandidateAssessments(candidateID uint) ([]model.CandidateAssessment, error) {
	return s.Repo.ListByCandidate(candidateID)
}

// FindByInviteToken resolves the run behind an invitation link.
func (s *CandidateAssessmentService) FindByInviteToken(token string) (*model.CandidateAssessment, error) {
	ca, err := s.Repo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCandidateRunNotFound
		}
		return nil, err
	}
	return ca, nil
}

// Answers lists the graded submissions of one run.
func (s *CandidateAssessmentService) Answers(caID uint) ([]model.CandidateAnswer, error) {
	if _, err := s.Repo.FindByID(caID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCandidateRunNotFound
		}
		return nil, err
	}
	return s.Repo.ListAnswers(caID)
}

// ExpireOverdue sweeps in_progress runs whose assessment time limit has
// elapsed into the terminal expired status. Driven by the background ticker
// in app startup.
func (s *CandidateAssessmentService) ExpireOverdue() error {
	n, err := s.Repo.ExpireOverdue(time.Now())
	if err != nil {
		return err
	}
	if n > 0 {
		monitoring.AssessmentTransitions.WithLabelValues(string(model.StatusExpired)).Add(float64(n))
		logger.Log.Info("expired overdue candidate assessments", zap.Int64("count", n))
	}
	return nil
}

func (s *CandidateAssessmentService) invalidateResults(assessmentID uint) {
	if s.Redis == nil {
		return
	}
	key := fmt.Sprintf("%s%d", resultsCacheKeyPrefix, assessmentID)
	s.Redis.Del(context.Background(), key)
}
