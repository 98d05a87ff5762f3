package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aplyease_backend/internal/middleware"
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/services"
	"aplyease_backend/internal/services/dto"
)

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   base,
		resumeService: resumeService,
	}
}

func (h *ResumeHandler) RegisterRoutes(r *gin.RouterGroup) {
	resumes := r.Group("/resumes")
	resumes.Use(h.Authenticated(), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleEmployee))
	{
		resumes.POST("/generate", h.Generate)
		resumes.POST("/refine", h.Refine)
		resumes.POST("/compile", h.Compile)
	}
}

func (h *ResumeHandler) Generate(c *gin.Context) {
	var req dto.GenerateResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.resumeService.Generate(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ResumeHandler) Refine(c *gin.Context) {
	var req dto.RefineResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.resumeService.Refine(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Compile returns the PDF bytes directly for download.
func (h *ResumeHandler) Compile(c *gin.Context) {
	var req dto.CompileResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pdf, err := h.resumeService.Compile(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
