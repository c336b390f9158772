package v1

import (
	"net/http"
	"time"

	"go-internhub-backend/config"
	"go-internhub-backend/internal/delivery/http/middleware"
	"go-internhub-backend/internal/delivery/http/response"
	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	StudentUC     domain.StudentUsecase
	CompanyUC     domain.CompanyUsecase
	VacancyUC     domain.VacancyUsecase
	InternshipUC  domain.InternshipUsecase
	ApplicationUC domain.ApplicationUsecase
	AdminUC       domain.AdminUsecase
	Issuer        *auth.Issuer
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must run before anything that can abort.
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	globalLimit := middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold)
	if deps.Config.RateLimitWindowSeconds > 0 {
		globalLimit.Window = time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	}
	r.Use(middleware.RateLimitMiddleware(globalLimit))

	// Static serving for uploaded company logos
	r.Static("/uploads", deps.Config.UploadDir)

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold))
	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig())

	// Authenticated groups, one per role
	authGate := middleware.AuthMiddleware(deps.Issuer, deps.AuthUC)

	student := v1.Group("")
	student.Use(authGate, middleware.RequireRoles(domain.RoleStudent))

	company := v1.Group("")
	company.Use(authGate, middleware.RequireRoles(domain.RoleCompany))

	admin := v1.Group("")
	admin.Use(authGate, middleware.RequireRoles(domain.RoleAdmin))

	NewAuthHandler(v1, loginLimiter, deps.AuthUC)
	NewStudentHandler(v1, student, deps.StudentUC, deps.ApplicationUC)
	NewCompanyHandler(v1, company, uploadLimiter, deps.CompanyUC, deps.VacancyUC, deps.ApplicationUC)
	NewInternshipHandler(v1, company, deps.InternshipUC)
	NewAdminHandler(admin, deps.AdminUC)

	return r
}
