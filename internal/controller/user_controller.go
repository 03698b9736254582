package controller

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"hire_assess_backend/internal/service"
	"hire_assess_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
	Storage *service.StorageService
}

func NewUserController(svc *service.UserService, storage *service.StorageService) *UserController {
	return &UserController{Service: svc, Storage: storage}
}

// @Summary List users
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param companyId query int false "narrow to one company"
// @Success 200 {object} util.Response
// @Router /api/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	var companyID *uint
	if idStr := ctx.Query("companyId"); idStr != "" {
		id := util.MustParseUint(idStr)
		if id == 0 {
			util.BadRequest(ctx, "invalid companyId")
			return
		}
		companyID = &id
	}

	users, err := c.Service.ListUsers(companyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, users)
}

// @Summary Upload the current candidate's resume
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "resume file (pdf/doc/docx)"
// @Success 200 {object} util.Response
// @Router /api/candidate/resume [post]
func (c *UserController) UploadResume(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowed := false
	for _, e := range util.AllowedResumeExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		util.BadRequest(ctx, "unsupported resume format")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	filename := fmt.Sprintf("resumes/%d_%d%s", claims.UserID, time.Now().Unix(), ext)
	url, err := c.Storage.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.Service.SetResumeURL(claims.UserID, url); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"resumeUrl": url})
}
