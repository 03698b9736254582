package controller

import (
	"errors"

	"hire_assess_backend/internal/service"
	"hire_assess_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuestionRequest true "question info"
// @Success 201 {object} util.Response
// @Router /api/recruiter/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, q)
}

// @Summary List a company's question bank
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param companyId query int true "company id"
// @Success 200 {object} util.Response
// @Router /api/recruiter/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	companyID := util.MustParseUint(ctx.Query("companyId"))
	if companyID == 0 {
		util.BadRequest(ctx, "companyId is required")
		return
	}

	questions, err := c.Service.ListQuestions(companyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// @Summary Question detail
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Router /api/recruiter/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	q, err := c.Service.GetQuestion(id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, q)
}
