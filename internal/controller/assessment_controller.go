package controller

import (
	"errors"

	"hire_assess_backend/internal/model"
	"hire_assess_backend/internal/service"
	"hire_assess_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary Create an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.AssessmentRequest true "assessment info"
// @Success 201 {object} util.Response
// @Router /api/recruiter/assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	var req service.AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.CreateAssessment(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, a)
}

// @Summary List a company's assessments
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param companyId query int true "company id"
// @Success 200 {object} util.Response
// @Router /api/recruiter/assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	companyID := util.MustParseUint(ctx.Query("companyId"))
	if companyID == 0 {
		util.BadRequest(ctx, "companyId is required")
		return
	}

	assessments, err := c.Service.ListAssessments(companyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, assessments)
}

// @Summary Assessment detail with its ordered questions
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/recruiter/assessments/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	a, err := c.Service.GetAssessment(id)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	questions, err := c.Service.ListAssessmentQuestions(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"assessment": a,
		"questions":  questions,
	})
}

type updateStatusRequest struct {
	Status model.AssessmentStatus `json:"status" binding:"required,oneof=draft active archived"`
}

// @Summary Update assessment status
// @Tags assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Param body body updateStatusRequest true "new status"
// @Success 200 {object} util.Response
// @Router /api/recruiter/assessments/{id}/status [put]
func (c *AssessmentController) UpdateStatus(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req updateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, a)
}

// @Summary Link a question into an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assessment id"
// @Param body body service.AddQuestionRequest true "question link"
// @Success 201 {object} util.Response
// @Router /api/recruiter/assessments/{id}/questions [post]
func (c *AssessmentController) AddQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.AddQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	link, err := c.Service.AddQuestion(id, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssessmentNotFound), errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrQuestionAlreadyLinked):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, link)
}
