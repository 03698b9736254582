package controller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"

	"hire_assess_backend/internal/service"
	"hire_assess_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CandidateAssessmentController struct {
	Service *service.CandidateAssessmentService
}

func NewCandidateAssessmentController(svc *service.CandidateAssessmentService) *CandidateAssessmentController {
	return &CandidateAssessmentController{Service: svc}
}

type inviteRequest struct {
	CandidateID  uint `json:"candidateId" binding:"required"`
	AssessmentID uint `json:"assessmentId" binding:"required"`
}

// @Summary Invite a candidate to an assessment
// @Tags candidate-assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body inviteRequest true "invitation"
// @Success 201 {object} util.Response
// @Router /api/recruiter/candidate-assessments [post]
func (c *CandidateAssessmentController) Invite(ctx *gin.Context) {
	var req inviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ca, err := c.Service.Invite(req.CandidateID, req.AssessmentID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCandidateNotFound), errors.Is(err, util.ErrAssessmentNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyInvited):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, ca)
}

// @Summary Start an invited assessment run
// @Tags candidate-assessments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "candidate assessment id"
// @Success 200 {object} util.Response
// @Router /api/candidate/candidate-assessments/{id}/start [post]
func (c *CandidateAssessmentController) Start(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	ca, err := c.Service.Start(id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCandidateRunNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidTransition):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, ca)
}

type submitAnswerRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// @Summary Submit an answer for one question
// @Tags candidate-assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "candidate assessment id"
// @Param body body submitAnswerRequest true "answer"
// @Success 201 {object} util.Response
// @Router /api/candidate/candidate-assessments/{id}/answers [post]
func (c *CandidateAssessmentController) SubmitAnswer(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req submitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.Service.SubmitAnswer(id, req.QuestionID, req.Answer)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotInAssessment) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, answer)
}

// @Summary Complete an assessment run and compute its score
// @Tags candidate-assessments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "candidate assessment id"
// @Success 200 {object} util.Response
// @Router /api/candidate/candidate-assessments/{id}/complete [post]
func (c *CandidateAssessmentController) Complete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	ca, err := c.Service.Complete(id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCandidateRunNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyCompleted), errors.Is(err, util.ErrInvalidTransition):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, ca)
}

// @Summary All candidate results for one assessment
// @Tags candidate-assessments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/recruiter/assessments/{id}/results [get]
func (c *CandidateAssessmentController) AssessmentResults(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	results, err := c.Service.AssessmentResults(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, results)
}

// @Summary Export an assessment's results as CSV
// @Tags candidate-assessments
// @Produce text/csv
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Success 200 {string} string "csv"
// @Router /api/recruiter/assessments/{id}/results/export [get]
func (c *CandidateAssessmentController) ExportResults(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	rows, err := c.Service.ResultRows(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=assessment_%d_results.csv", id))
	ctx.Status(http.StatusOK)

	w := csv.NewWriter(ctx.Writer)
	defer w.Flush()

	w.Write([]string{"candidate_email", "candidate_name", "status", "score", "total_points", "invited_at", "started_at", "completed_at"})
	for _, row := range rows {
		score := ""
		if row.Score.Valid {
			score = row.Score.Decimal.StringFixed(2)
		}
		total := ""
		if row.TotalPoints != nil {
			total = fmt.Sprintf("%d", *row.TotalPoints)
		}
		started := ""
		if row.StartedAt != nil {
			started = row.StartedAt.Format(util.TimeFormat)
		}
		completed := ""
		if row.CompletedAt != nil {
			completed = row.CompletedAt.Format(util.TimeFormat)
		}
		w.Write([]string{
			row.CandidateEmail,
			row.CandidateName,
			string(row.Status),
			score,
			total,
			row.InvitedAt.Format(util.TimeFormat),
			started,
			completed,
		})
	}
}

// @Summary One candidate assessment with its graded answers
// @Tags candidate-assessments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "candidate assessment id"
// @Success 200 {object} util.Response
// @Router /api/recruiter/candidate-assessments/{id} [get]
func (c *CandidateAssessmentController) CandidateResult(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	ca, err := c.Service.CandidateResult(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if ca == nil {
		util.Success(ctx, nil)
		return
	}

	answers, err := c.Service.Answers(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"candidateAssessment": ca,
		"answers":             answers,
	})
}

// @Summary List the current candidate's assessment runs
// @Tags candidate-assessments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/candidate/candidate-assessments [get]
func (c *CandidateAssessmentController) MyAssessments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	cas, err := c.Service.CandidateAssessments(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, cas)
}

// @Summary Resolve an invitation link
// @Tags candidate-assessments
// @Produce json
// @Param token path string true "invite token"
// @Success 200 {object} util.Response
// @Router /api/invitations/{token} [get]
func (c *CandidateAssessmentController) ByInviteToken(ctx *gin.Context) {
	token := ctx.Param("token")
	if token == "" {
		util.BadRequest(ctx, "invalid token")
		return
	}

	ca, err := c.Service.FindByInviteToken(token)
	if err != nil {
		if errors.Is(err, util.ErrCandidateRunNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, ca)
}
