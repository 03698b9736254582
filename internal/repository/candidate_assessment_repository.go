package repository

import (
	"time"

	"hire_assess_backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssessmentResultRow is a candidate assessment joined with the candidate's
// identity, used by the recruiter result views and the CSV export.
type AssessmentResultRow struct {
	ID             uint                            `json:"id"`
	CandidateID    uint                            `json:"candidateId"`
	CandidateEmail string                          `json:"candidateEmail"`
	CandidateName  string                          `json:"candidateName"`
	Status         model.CandidateAssessmentStatus `json:"status"`
	InvitedAt      time.Time                       `json:"invitedAt"`
	StartedAt      *time.Time                      `json:"startedAt"`
	CompletedAt    *time.Time                      `json:"completedAt"`
	Score          decimal.NullDecimal             `json:"score"`
	TotalPoints    *int                            `json:"totalPoints"`
}

type CandidateAssessmentRepository interface {
	Create(ca *model.CandidateAssessment) error
	FindByID(id uint) (*model.CandidateAssessment, error)
	FindByPair(candidateID, assessmentID uint) (*model.CandidateAssessment, error)
	FindByToken(token string) (*model.CandidateAssessment, error)
	ListByAssessment(assessmentID uint) ([]model.CandidateAssessment, error)
	ListResultRows(assessmentID uint) ([]AssessmentResultRow, error)
	ListByCandidate(candidateID uint) ([]model.CandidateAssessment, error)
	MarkStarted(id uint, at time.Time) (bool, error)
	CompleteWithScore(id uint, at time.Time, score decimal.Decimal, totalPoints int) (bool, error)
	SumPointsEarned(caID uint) (decimal.Decimal, error)
	UpsertAnswer(answer *model.CandidateAnswer) error
	ListAnswers(caID uint) ([]model.CandidateAnswer, error)
	ExpireOverdue(now time.Time) (int64, error)
}

type candidateAssessmentRepository struct {
	DB *gorm.DB
}

func NewCandidateAssessmentRepository(db *gorm.DB) CandidateAssessmentRepository {
	return &candidateAssessmentRepository{DB: db}
}

func (r *candidateAssessmentRepository) Create(ca *model.CandidateAssessment) error {
	return r.DB.Create(ca).Error
}

func (r *candidateAssessmentRepository) FindByID(id uint) (*model.CandidateAssessment, error) {
	var ca model.CandidateAssessment
	if err := r.DB.First(&ca, id).Error; err != nil {
		return nil, err
	}
	return &ca, nil
}

func (r *candidateAssessmentRepository) FindByPair(candidateID, assessmentID uint) (*model.CandidateAssessment, error) {
	var ca model.CandidateAssessment
	err := r.DB.Where("candidate_id = ? AND assessment_id = ?", candidateID, assessmentID).First(&ca).Error
	if err != nil {
		return nil, err
	}
	return &ca, nil
}

func (r *candidateAssessmentRepository) FindByToken(token string) (*model.CandidateAssessment, error) {
	var ca model.CandidateAssessment
	if err := r.DB.Where("invite_token = ?", token).First(&ca).Error; err != nil {
		return nil, err
	}
	return &ca, nil
}

func (r *candidateAssessmentRepository) ListByAssessment(assessmentID uint) ([]model.CandidateAssessment, error) {
	var cas []model.CandidateAssessment
	err := r.DB.Where("assessment_id = ?", assessmentID).Order("invited_at ASC").Find(&cas).Error
	return cas, err
}

func (r *candidateAssessmentRepository) ListResultRows(assessmentID uint) ([]AssessmentResultRow, error) {
	var rows []AssessmentResultRow
	err := r.DB.Table("candidate_assessments").
		Select("candidate_assessments.id, candidate_assessments.candidate_id, users.email AS candidate_email, "+
			"CONCAT(users.first_name, ' ', users.last_name) AS candidate_name, candidate_assessments.status, "+
			"candidate_assessments.invited_at, candidate_assessments.started_at, candidate_assessments.completed_at, "+
			"candidate_assessments.score, candidate_assessments.total_points").
		Joins("INNER JOIN users ON users.id = candidate_assessments.candidate_id").
		Where("candidate_assessments.assessment_id = ? AND candidate_assessments.deleted_at IS NULL", assessmentID).
		Order("candidate_assessments.invited_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *candidateAssessmentRepository) ListByCandidate(candidateID uint) ([]model.CandidateAssessment, error) {
	var cas []model.CandidateAssessment
	err := r.DB.Where("candidate_id = ?", candidateID).Order("invited_at DESC").Find(&cas).Error
	return cas, err
}

// MarkStarted flips invited → in_progress. The status guard in the WHERE
// clause keeps the transition exactly-once under concurrent callers.
func (r *candidateAssessmentRepository) MarkStarted(id uint, at time.Time) (bool, error) {
	res := r.DB.Model(&model.CandidateAssessment{}).
		Where("id = ? AND status = ?", id, model.StatusInvited).
		Updates(map[string]interface{}{
			"status":     model.StatusInProgress,
			"started_at": at,
		})
	return res.RowsAffected > 0, res.Error
}

// CompleteWithScore writes the final score. Conditional on the row not
// already being completed, so a second completion never rewrites the score.
func (r *candidateAssessmentRepository) CompleteWithScore(id uint, at time.Time, score decimal.Decimal, totalPoints int) (bool, error) {
	res := r.DB.Model(&model.CandidateAssessment{}).
		Where("id = ? AND status <> ?", id, model.StatusCompleted).
		Updates(map[string]interface{}{
			"status":       model.StatusCompleted,
			"completed_at": at,
			"score":        score,
			"total_points": totalPoints,
		})
	return res.RowsAffected > 0, res.Error
}

// SumPointsEarned aggregates earned points across all answers of one
// candidate assessment. Ungraded answers (NULL points) contribute 0, and an
// assessment with no answers yet sums to 0, not NULL.
func (r *candidateAssessmentRepository) SumPointsEarned(caID uint) (decimal.Decimal, error) {
	var raw string
	err := r.DB.Model(&model.CandidateAnswer{}).
		Where("candidate_assessment_id = ?", caID).
		Select("COALESCE(SUM(points_earned), 0)").
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(raw)
}

// UpsertAnswer inserts the answer, or overwrites the previous submission for
// the same question of the same candidate assessment.
func (r *candidateAssessmentRepository) UpsertAnswer(answer *model.CandidateAnswer) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "candidate_assessment_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"answer", "is_correct", "points_earned", "answered_at",
		}),
	}).Create(answer).Error
}

func (r *candidateAssessmentRepository) ListAnswers(caID uint) ([]model.CandidateAnswer, error) {
	var answers []model.CandidateAnswer
	err := r.DB.Where("candidate_assessment_id = ?", caID).Order("answered_at ASC").Find(&answers).Error
	return answers, err
}

// ExpireOverdue moves every in_progress run whose assessment time limit has
// elapsed into the terminal expired status.
func (r *candidateAssessmentRepository) ExpireOverdue(now time.Time) (int64, error) {
	res := r.DB.Exec(`
		UPDATE candidate_assessments ca
		INNER JOIN assessments a ON a.id = ca.assessment_id
		SET ca.status = ?
		WHERE ca.status = ?
		  AND ca.deleted_at IS NULL
		  AND ca.started_at IS NOT NULL
		  AND a.time_limit_minutes IS NOT NULL
		  AND a.time_limit_minutes > 0
		  AND DATE_ADD(ca.started_at, INTERVAL a.time_limit_minutes MINUTE) <= ?`,
		model.StatusExpired, model.StatusInProgress, now)
	return res.RowsAffected, res.Error
}
