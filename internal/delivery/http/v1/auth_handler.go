package v1

import (
	"errors"
	"net/http"

	"go-internhub-backend/internal/delivery/http/response"
	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/apperror"
	"go-internhub-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, loginLimiter gin.HandlerFunc, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	students := public.Group("/students")
	{
		students.POST("/register", handler.RegisterStudent)
		students.POST("/login", loginLimiter, handler.LoginStudent)
	}

	companies := public.Group("/companies")
	{
		companies.POST("/register", handler.RegisterCompany)
		companies.POST("/login", loginLimiter, handler.LoginCompany)
	}

	admin := public.Group("/admin")
	{
		admin.POST("/register", handler.RegisterAdmin)
		admin.POST("/login", loginLimiter, handler.LoginAdmin)
	}
}

type RegisterStudentRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100,valid_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	CV       string `json:"cv" binding:"omitempty,url"`
}

type RegisterCompanyRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=150"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6"`
	Address       string  `json:"address" binding:"required"`
	Telephone     string  `json:"telephone" binding:"required,valid_phone"`
	LinkedinURL   *string `json:"linkedin_url" binding:"omitempty,linkedin_url"`
	Biography     *string `json:"biography" binding:"omitempty,max=2000"`
	TermsAccepted bool    `json:"terms_accepted"`
}

type RegisterAdminRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100,valid_name"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	Permissions []string `json:"permissions"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func bindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)))
		return
	}
	c.Error(apperror.BadRequest("Invalid request body"))
}

// RegisterStudent godoc
// @Summary      Register a student account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterStudentRequest  true  "Student registration"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /students/register [post]
func (h *AuthHandler) RegisterStudent(c *gin.Context) {
	var req RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.authUC.RegisterStudent(c.Request.Context(), &domain.Student{
		Name:  req.Name,
		Email: req.Email,
		CV:    req.CV,
	}, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Student registered successfully", result)
}

// RegisterCompany godoc
// @Summary      Register a company account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterCompanyRequest  true  "Company registration"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /companies/register [post]
func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.authUC.RegisterCompany(c.Request.Context(), &domain.Company{
		Name:          req.Name,
		Email:         req.Email,
		Address:       req.Address,
		Telephone:     req.Telephone,
		LinkedinURL:   req.LinkedinURL,
		Biography:     req.Biography,
		TermsAccepted: req.TermsAccepted,
	}, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company registered successfully", result)
}

// RegisterAdmin godoc
// @Summary      Register an admin account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterAdminRequest  true  "Admin registration"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /admin/register [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.authUC.RegisterAdmin(c.Request.Context(), &domain.Admin{
		Name:        req.Name,
		Email:       req.Email,
		Permissions: req.Permissions,
	}, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Admin registered successfully", result)
}

// LoginStudent godoc
// @Summary      Student login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /students/login [post]
func (h *AuthHandler) LoginStudent(c *gin.Context) {
	h.login(c, domain.RoleStudent)
}

// LoginCompany godoc
// @Summary      Company login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /companies/login [post]
func (h *AuthHandler) LoginCompany(c *gin.Context) {
	h.login(c, domain.RoleCompany)
}

// LoginAdmin godoc
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /admin/login [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	h.login(c, domain.RoleAdmin)
}

func (h *AuthHandler) login(c *gin.Context, role string) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), role, req.Email, req.Password, c.ClientIP())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", result)
}
