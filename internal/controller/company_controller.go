package controller

import (
	"errors"

	"hire_assess_backend/internal/service"
	"hire_assess_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CompanyController struct {
	Service *service.CompanyService
}

func NewCompanyController(svc *service.CompanyService) *CompanyController {
	return &CompanyController{Service: svc}
}

// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CompanyRequest true "company info"
// @Success 201 {object} util.Response
// @Router /api/admin/companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	var req service.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	company, err := c.Service.CreateCompany(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, company)
}

// @Summary List companies
// @Tags companies
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/companies [get]
func (c *CompanyController) ListCompanies(ctx *gin.Context) {
	companies, err := c.Service.ListCompanies()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, companies)
}

// @Summary Company detail
// @Tags companies
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "company id"
// @Success 200 {object} util.Response
// @Router /api/admin/companies/{id} [get]
func (c *CompanyController) GetCompany(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	company, err := c.Service.GetCompany(id)
	if err != nil {
		if errors.Is(err, util.ErrCompanyNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, company)
}
