package v1

import (
	"net/http"

	"go-internhub-backend/internal/delivery/http/response"
	"go-internhub-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentUC     domain.StudentUsecase
	applicationUC domain.ApplicationUsecase
}

func NewStudentHandler(public, student *gin.RouterGroup, studentUC domain.StudentUsecase, applicationUC domain.ApplicationUsecase) {
	handler := &StudentHandler{studentUC: studentUC, applicationUC: applicationUC}

	// Public read of a student profile, password never serialized.
	public.GET("/students/profile/:id", handler.PublicProfile)

	students := student.Group("/students")
	{
		students.PUT("/profile", handler.UpdateProfile)
		students.POST("/apply/vacancy/:vacancyId", handler.ApplyToVacancy)
		students.POST("/apply/:internshipId", handler.ApplyToInternship)
		students.GET("/applications", handler.MyApplications)
	}
}

type UpdateStudentProfileRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100,valid_name"`
	CV   *string `json:"cv" binding:"omitempty,url"`
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" binding:"omitempty,max=5000"`
}

// PublicProfile godoc
// @Summary      Get a student's public profile
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /students/profile/{id} [get]
func (h *StudentHandler) PublicProfile(c *gin.Context) {
	student, err := h.studentUC.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Student profile", student)
}

// UpdateProfile godoc
// @Summary      Update own student profile
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateStudentProfileRequest  true  "Profile fields"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /students/profile [put]
// @Security     BearerAuth
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	var req UpdateStudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	studentID := c.GetString(string(domain.KeyUserID))
	student, err := h.studentUC.UpdateProfile(c.Request.Context(), studentID, domain.StudentUpdate{
		Name: req.Name,
		CV:   req.CV,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", student)
}

// ApplyToVacancy godoc
// @Summary      Apply to a vacancy
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        vacancyId  path      string        true   "Vacancy ID"
// @Param        body       body      ApplyRequest  false  "Cover letter"
// @Success      201        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Router       /students/apply/vacancy/{vacancyId} [post]
// @Security     BearerAuth
func (h *StudentHandler) ApplyToVacancy(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		bindingError(c, err)
		return
	}

	studentID := c.GetString(string(domain.KeyUserID))
	app, err := h.applicationUC.ApplyToVacancy(c.Request.Context(), studentID, c.Param("vacancyId"), req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ApplyToInternship godoc
// @Summary      Apply to an internship
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        internshipId  path      string        true   "Internship ID"
// @Param        body          body      ApplyRequest  false  "Cover letter"
// @Success      201           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Failure      409           {object}  response.Response
// @Router       /students/apply/{internshipId} [post]
// @Security     BearerAuth
func (h *StudentHandler) ApplyToInternship(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		bindingError(c, err)
		return
	}

	studentID := c.GetString(string(domain.KeyUserID))
	app, err := h.applicationUC.ApplyToInternship(c.Request.Context(), studentID, c.Param("internshipId"), req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// MyApplications godoc
// @Summary      List own applications across vacancies and internships
// @Tags         students
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /students/applications [get]
// @Security     BearerAuth
func (h *StudentHandler) MyApplications(c *gin.Context) {
	studentID := c.GetString(string(domain.KeyUserID))
	apps, err := h.applicationUC.MyApplications(c.Request.Context(), studentID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Your applications", apps)
}
