package v1

import (
	"io"
	"net/http"
	"strconv"

	"go-internhub-backend/internal/delivery/http/response"
	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxLogoUploadBytes caps multipart logo uploads before decoding.
const maxLogoUploadBytes = 5 << 20

type CompanyHandler struct {
	companyUC     domain.CompanyUsecase
	vacancyUC     domain.VacancyUsecase
	applicationUC domain.ApplicationUsecase
}

func NewCompanyHandler(public, company *gin.RouterGroup, uploadLimiter gin.HandlerFunc, companyUC domain.CompanyUsecase, vacancyUC domain.VacancyUsecase, applicationUC domain.ApplicationUsecase) {
	handler := &CompanyHandler{
		companyUC:     companyUC,
		vacancyUC:     vacancyUC,
		applicationUC: applicationUC,
	}

	// Verification token redemption is public: the link lands before login.
	public.POST("/companies/verify", handler.VerifyAccount)
	public.GET("/jobs/public", handler.PublicVacancies)

	companies := company.Group("/companies")
	{
		companies.GET("/profile", handler.GetProfile)
		companies.PUT("/profile", handler.UpdateProfile)
		companies.POST("/reset-password", handler.ResetPassword)
		companies.POST("/logo", uploadLimiter, handler.UploadLogo)

		companies.POST("/vacancies", handler.PostVacancy)
		companies.GET("/vacancies", handler.ViewVacancies)
		companies.PUT("/vacancies/:id", handler.EditVacancy)
		companies.PUT("/vacancies/:id/status", handler.ChangeVacancyStatus)
		companies.DELETE("/vacancies/:id", handler.DeleteVacancy)

		companies.GET("/vacancies/:id/applications", handler.ListApplications)
		companies.PUT("/vacancies/:id/applications/:studentId/status", handler.ReviewApplication)
	}
}

type UpdateCompanyProfileRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=150"`
	Address     *string `json:"address"`
	Telephone   *string `json:"telephone" binding:"omitempty,valid_phone"`
	LinkedinURL *string `json:"linkedin_url" binding:"omitempty,linkedin_url"`
	Biography   *string `json:"biography" binding:"omitempty,max=2000"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type VerifyAccountRequest struct {
	Token string `json:"token" binding:"required"`
}

type PostVacancyRequest struct {
	Title        string  `json:"title" binding:"required,min=3,max=200"`
	Description  string  `json:"description" binding:"required"`
	Requirements string  `json:"requirements" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	Salary       *string `json:"salary"`
	Type         string  `json:"type" binding:"required,oneof=full-time part-time internship contract"`
}

type EditVacancyRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=3,max=200"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Location     *string `json:"location"`
	Salary       *string `json:"salary"`
	Type         *string `json:"type" binding:"omitempty,oneof=full-time part-time internship contract"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetProfile godoc
// @Summary      Get own company profile
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /companies/profile [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	companyID := c.GetString(string(domain.KeyUserID))
	company, err := h.companyUC.GetProfile(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", company)
}

// UpdateProfile godoc
// @Summary      Update own company profile
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateCompanyProfileRequest  true  "Profile fields"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /companies/profile [put]
// @Security     BearerAuth
func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	var req UpdateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	companyID := c.GetString(string(domain.KeyUserID))
	company, err := h.companyUC.UpdateProfile(c.Request.Context(), companyID, domain.CompanyUpdate{
		Name:        req.Name,
		Address:     req.Address,
		Telephone:   req.Telephone,
		LinkedinURL: req.LinkedinURL,
		Biography:   req.Biography,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", company)
}

// ResetPassword godoc
// @Summary      Reset own password
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      ResetPasswordRequest  true  "New password"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /companies/reset-password [post]
// @Security     BearerAuth
func (h *CompanyHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	companyID := c.GetString(string(domain.KeyUserID))
	if err := h.companyUC.ResetPassword(c.Request.Context(), companyID, req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password reset successfully", nil)
}

// VerifyAccount godoc
// @Summary      Redeem a verification token
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      VerifyAccountRequest  true  "Verification token"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /companies/verify [post]
func (h *CompanyHandler) VerifyAccount(c *gin.Context) {
	var req VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	company, err := h.companyUC.VerifyAccount(c.Request.Context(), req.Token)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Account verified successfully", company)
}

// UploadLogo godoc
// @Summary      Upload a company logo
// @Description  Accepts a multipart image, resizes it server-side, stores it under the uploads dir
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file  true  "Logo image"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /companies/logo [post]
// @Security     BearerAuth
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.Error(apperror.BadRequest("Logo file is required"))
		return
	}
	if fileHeader.Size > maxLogoUploadBytes {
		c.Error(apperror.BadRequest("Logo file must be 5MB or smaller"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxLogoUploadBytes+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	companyID := c.GetString(string(domain.KeyUserID))
	logoURL, err := h.companyUC.UploadLogo(c.Request.Context(), companyID, data, fileHeader.Filename)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logo uploaded", gin.H{"logo_url": logoURL})
}

// PublicVacancies godoc
// @Summary      List active vacancies with company info
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobs/public [get]
func (h *CompanyHandler) PublicVacancies(c *gin.Context) {
	page, pageSize := pageParams(c)
	vacancies, total, err := h.vacancyUC.ListPublicActive(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Active vacancies", gin.H{
		"vacancies": vacancies,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// PostVacancy godoc
// @Summary      Post a new vacancy
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      PostVacancyRequest  true  "Vacancy"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /companies/vacancies [post]
// @Security     BearerAuth
func (h *CompanyHandler) PostVacancy(c *gin.Context) {
	var req PostVacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	companyID := c.GetString(string(domain.KeyUserID))
	vacancy := &domain.Vacancy{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Salary:       req.Salary,
		Type:         domain.EmploymentType(req.Type),
	}
	if err := h.vacancyUC.PostVacancy(c.Request.Context(), companyID, vacancy); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Vacancy posted", vacancy)
}

// ViewVacancies godoc
// @Summary      List own vacancies
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /companies/vacancies [get]
// @Security     BearerAuth
func (h *CompanyHandler) ViewVacancies(c *gin.Context) {
	companyID := c.GetString(string(domain.KeyUserID))
	vacancies, err := h.vacancyUC.ViewVacancies(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Your vacancies", vacancies)
}

// EditVacancy godoc
// @Summary      Edit an owned vacancy
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Vacancy ID"
// @Param        body  body      EditVacancyRequest  true  "Fields to change"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /companies/vacancies/{id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) EditVacancy(c *gin.Context) {
	var req EditVacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	update := domain.VacancyUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Salary:       req.Salary,
	}
	if req.Type != nil {
		t := domain.EmploymentType(*req.Type)
		update.Type = &t
	}

	companyID := c.GetString(string(domain.KeyUserID))
	vacancy, err := h.vacancyUC.EditVacancy(c.Request.Context(), companyID, c.Param("id"), update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy updated", vacancy)
}

// ChangeVacancyStatus godoc
// @Summary      Change an owned vacancy's status
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Vacancy ID"
// @Param        body  body      ChangeStatusRequest  true  "Target status"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /companies/vacancies/{id}/status [put]
// @Security     BearerAuth
func (h *CompanyHandler) ChangeVacancyStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	companyID := c.GetString(string(domain.KeyUserID))
	vacancy, err := h.vacancyUC.ChangeStatus(c.Request.Context(), companyID, c.Param("id"), domain.VacancyStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy status updated", vacancy)
}

// DeleteVacancy godoc
// @Summary      Delete an owned vacancy
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/vacancies/{id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) DeleteVacancy(c *gin.Context) {
	companyID := c.GetString(string(domain.KeyUserID))
	if err := h.vacancyUC.DeleteVacancy(c.Request.Context(), companyID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy deleted", nil)
}

// ListApplications godoc
// @Summary      List applications for an owned vacancy
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/vacancies/{id}/applications [get]
// @Security     BearerAuth
func (h *CompanyHandler) ListApplications(c *gin.Context) {
	companyID := c.GetString(string(domain.KeyUserID))
	apps, err := h.applicationUC.ListForVacancy(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", apps)
}

// ReviewApplication godoc
// @Summary      Move an application through its review lifecycle
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id         path      string               true  "Vacancy ID"
// @Param        studentId  path      string               true  "Student ID"
// @Param        body       body      ChangeStatusRequest  true  "Target status"
// @Success      200        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Router       /companies/vacancies/{id}/applications/{studentId}/status [put]
// @Security     BearerAuth
func (h *CompanyHandler) ReviewApplication(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	companyID := c.GetString(string(domain.KeyUserID))
	app, err := h.applicationUC.Review(c.Request.Context(), companyID, c.Param("id"), c.Param("studentId"), domain.ApplicationStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", app)
}

// pageParams reads page/page_size query params with defaults.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}
	return page, pageSize
}
