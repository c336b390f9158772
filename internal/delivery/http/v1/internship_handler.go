package v1

import (
	"net/http"

	"go-internhub-backend/internal/delivery/http/response"
	"go-internhub-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type InternshipHandler struct {
	internshipUC domain.InternshipUsecase
}

func NewInternshipHandler(public, company *gin.RouterGroup, internshipUC domain.InternshipUsecase) {
	handler := &InternshipHandler{internshipUC: internshipUC}

	// Public browsing
	publicInternships := public.Group("/internships")
	{
		publicInternships.GET("", handler.List)
		publicInternships.GET("/company/:companyId", handler.ListByCompany)
		publicInternships.GET("/:id", handler.Get)
	}

	// Company-owned CRUD
	companyInternships := company.Group("/internships")
	{
		companyInternships.POST("", handler.Create)
		companyInternships.PUT("/:id", handler.Update)
		companyInternships.DELETE("/:id", handler.Delete)
	}
}

type CreateInternshipRequest struct {
	Title        string   `json:"title" binding:"required,min=3,max=200"`
	Description  string   `json:"description" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Duration     string   `json:"duration" binding:"required"`
	Stipend      string   `json:"stipend"`
	Requirements []string `json:"requirements"`
}

type UpdateInternshipRequest struct {
	Title        *string  `json:"title" binding:"omitempty,min=3,max=200"`
	Description  *string  `json:"description"`
	Location     *string  `json:"location"`
	Duration     *string  `json:"duration"`
	Stipend      *string  `json:"stipend"`
	Requirements []string `json:"requirements"`
}

// List godoc
// @Summary      Browse internships
// @Tags         internships
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /internships [get]
func (h *InternshipHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	internships, total, err := h.internshipUC.ListInternships(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Internships", gin.H{
		"internships": internships,
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
	})
}

// Get godoc
// @Summary      Get internship details
// @Tags         internships
// @Produce      json
// @Param        id   path      string  true  "Internship ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /internships/{id} [get]
func (h *InternshipHandler) Get(c *gin.Context) {
	internship, err := h.internshipUC.GetInternship(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Internship details", internship)
}

// ListByCompany godoc
// @Summary      Browse a company's internships
// @Tags         internships
// @Produce      json
// @Param        companyId  path      string  true   "Company ID"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /internships/company/{companyId} [get]
func (h *InternshipHandler) ListByCompany(c *gin.Context) {
	page, pageSize := pageParams(c)
	internships, total, err := h.internshipUC.ListByCompany(c.Request.Context(), c.Param("companyId"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company internships", gin.H{
		"internships": internships,
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
	})
}

// Create godoc
// @Summary      Post a new internship
// @Tags         internships
// @Accept       json
// @Produce      json
// @Param        body  body      CreateInternshipRequest  true  "Internship"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /internships [post]
// @Security     BearerAuth
func (h *InternshipHandler) Create(c *gin.Context) {
	var req CreateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	companyID := c.GetString(string(domain.KeyUserID))
	internship := &domain.Internship{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Duration:     req.Duration,
		Stipend:      req.Stipend,
		Requirements: req.Requirements,
	}
	if err := h.internshipUC.CreateInternship(c.Request.Context(), companyID, internship); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Internship posted", internship)
}

// Update godoc
// @Summary      Edit an owned internship
// @Tags         internships
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Internship ID"
// @Param        body  body      UpdateInternshipRequest  true  "Fields to change"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /internships/{id} [put]
// @Security     BearerAuth
func (h *InternshipHandler) Update(c *gin.Context) {
	var req UpdateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	companyID := c.GetString(string(domain.KeyUserID))
	internship, err := h.internshipUC.UpdateInternship(c.Request.Context(), companyID, c.Param("id"), domain.InternshipUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Duration:     req.Duration,
		Stipend:      req.Stipend,
		Requirements: req.Requirements,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Internship updated", internship)
}

// Delete godoc
// @Summary      Delete an owned internship
// @Tags         internships
// @Produce      json
// @Param        id   path      string  true  "Internship ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /internships/{id} [delete]
// @Security     BearerAuth
func (h *InternshipHandler) Delete(c *gin.Context) {
	companyID := c.GetString(string(domain.KeyUserID))
	if err := h.internshipUC.DeleteInternship(c.Request.Context(), companyID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Internship deleted", nil)
}
