package service

import (
	"errors"

	"hire_assess_backend/internal/model"
	"hire_assess_backend/internal/repository"
	"hire_assess_backend/internal/util"

	"gorm.io/gorm"
)

type AssessmentService struct {
	Repo         repository.AssessmentRepository
	QuestionRepo repository.QuestionRepository
}

func NewAssessmentService(repo repository.AssessmentRepository, questionRepo repository.QuestionRepository) *AssessmentService {
	return &AssessmentService{Repo: repo, QuestionRepo: questionRepo}
}

type AssessmentRequest struct {
	Title            string  `json:"title" binding:"required"`
	Description      *string `json:"description"`
	CompanyID        uint    `json:"companyId" binding:"required"`
	CreatedBy        uint    `json:"createdBy" binding:"required"`
	TimeLimitMinutes *int    `json:"timeLimitMinutes" binding:"omitempty,gt=0"`
}

func (s *AssessmentService) CreateAssessment(req AssessmentRequest) (*model.Assessment, error) {
	a := &model.Assessment{
		Title:            req.Title,
		Description:      req.Description,
		CompanyID:        req.CompanyID,
		CreatedBy:        req.CreatedBy,
		Status:           model.AssessmentDraft,
		TimeLimitMinutes: req.TimeLimitMinutes,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssessmentService) GetAssessment(id uint) (*model.Assessment, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AssessmentService) ListAssessments(companyID uint) ([]model.Assessment, error) {
	return s.Repo.ListByCompany(companyID)
}

func (s *AssessmentService) UpdateStatus(id uint, status model.AssessmentStatus) (*model.Assessment, error) {
	n, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, util.ErrAssessmentNotFound
	}
	return s.Repo.FindByID(id)
}

type AddQuestionRequest struct {
	QuestionID uint `json:"questionId" binding:"required"`
	OrderIndex int  `json:"orderIndex"`
	// Points defaults to 1 when omitted; negative values are rejected.
	Points *int `json:"points" binding:"omitempty,gte=0"`
}

// AddQuestion links a question into an assessment. The same question cannot
// be linked twice; the unique index on (assessment_id, question_id) backs
// the pre-check.
func (s *AssessmentService) AddQuestion(assessmentID uint, req AddQuestionRequest) (*model.AssessmentQuestion, error) {
	if _, err := s.Repo.FindByID(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}

	if _, err := s.QuestionRepo.FindByID(req.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if _, err := s.Repo.FindQuestionLink(assessmentID, req.QuestionID); err == nil {
		return nil, util.ErrQuestionAlreadyLinked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	points := 1
	if req.Points != nil {
		points = *req.Points
	}

	link := &model.AssessmentQuestion{
		AssessmentID: assessmentID,
		QuestionID:   req.QuestionID,
		OrderIndex:   req.OrderIndex,
		Points:       points,
	}
	if err := s.Repo.CreateQuestionLink(link); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrQuestionAlreadyLinked
		}
		return nil, err
	}
	return link, nil
}

// AssessmentQuestionView is a question joined with its per-assessment
// position and point value, in display order.
type AssessmentQuestionView struct {
	Question   model.Question `json:"question"`
	OrderIndex int            `json:"orderIndex"`
	Points     int            `json:"points"`
}

func (s *AssessmentService) ListAssessmentQuestions(assessmentID uint) ([]AssessmentQuestionView, error) {
	if _, err := s.Repo.FindByID(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}

	links, err := s.Repo.ListQuestionLinks(assessmentID)
	if err != nil {
		return nil, err
	}

	views := make([]AssessmentQuestionView, 0, len(links))
	for _, link := range links {
		q, err := s.QuestionRepo.FindByID(link.QuestionID)
		if err != nil {
			return nil, err
		}
		views = append(views, AssessmentQuestionView{
			Question:   *q,
			OrderIndex: link.OrderIndex,
			Points:     link.Points,
		})
	}
	return views, nil
}
