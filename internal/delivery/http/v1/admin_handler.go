package v1

import (
	"net/http"
	"time"

	"go-internhub-backend/internal/delivery/http/middleware"
	"go-internhub-backend/internal/delivery/http/response"
	"go-internhub-backend/internal/domain"
	"go-internhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(admin *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	group := admin.Group("/admin")
	{
		group.GET("/users", handler.ListUsers)
		group.PUT("/users/:role/:id", handler.UpdateUser)
		group.DELETE("/users/:role/:id", handler.DeleteUser)

		group.POST("/categories", handler.CreateCategory)
		group.GET("/categories", handler.ListCategories)
		group.PUT("/categories/:id", handler.UpdateCategory)
		group.DELETE("/categories/:id", handler.DeleteCategory)

		group.GET("/jobs", handler.ListJobPosts)
		group.PUT("/jobs/:companyId/:vacancyId/status", handler.UpdateJobStatus)

		group.GET("/subscriptions", handler.ListSubscriptions)
		group.PUT("/subscriptions/:id", handler.UpdateSubscription)

		group.POST("/notifications", handler.CreateNotification)
		group.GET("/notifications", handler.ListNotifications)
		group.PUT("/notifications/:id", handler.UpdateNotification)
		group.DELETE("/notifications/:id", handler.DeleteNotification)

		group.GET("/analytics", handler.Analytics)

		group.GET("/profile", handler.GetProfile)
		group.PUT("/profile", handler.UpdateProfile)
	}
}

type AdminUpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=150"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Icon        *string `json:"icon"`
	Color       string  `json:"color" binding:"omitempty,hexcolor"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateSubscriptionRequest struct {
	PlanType      *string    `json:"plan_type" binding:"omitempty,oneof=basic premium enterprise"`
	PlanName      *string    `json:"plan_name"`
	Price         *float64   `json:"price" binding:"omitempty,gte=0"`
	BillingCycle  *string    `json:"billing_cycle" binding:"omitempty,oneof=monthly quarterly yearly"`
	EndDate       *time.Time `json:"end_date"`
	Status        *string    `json:"status" binding:"omitempty,oneof=active expired cancelled pending"`
	PaymentMethod *string    `json:"payment_method"`
}

type CreateNotificationRequest struct {
	Title          string     `json:"title" binding:"required,min=2,max=200"`
	Message        string     `json:"message" binding:"required"`
	Type           string     `json:"type" binding:"omitempty,oneof=info success warning error promotion"`
	Priority       string     `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	TargetAudience string     `json:"target_audience" binding:"omitempty,oneof=all students companies specific"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
	ActionURL      *string    `json:"action_url" binding:"omitempty,url"`
	ActionText     *string    `json:"action_text"`
}

type UpdateNotificationRequest struct {
	Title          *string    `json:"title" binding:"omitempty,min=2,max=200"`
	Message        *string    `json:"message"`
	Type           *string    `json:"type" binding:"omitempty,oneof=info success warning error promotion"`
	Priority       *string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	TargetAudience *string    `json:"target_audience" binding:"omitempty,oneof=all students companies specific"`
	IsActive       *bool      `json:"is_active"`
	ExpiresAt      *time.Time `json:"expires_at"`
	ActionURL      *string    `json:"action_url" binding:"omitempty,url"`
	ActionText     *string    `json:"action_text"`
}

type UpdateAdminProfileRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100,valid_name"`
}

func principalOrAbort(c *gin.Context) *domain.Principal {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		c.Error(apperror.Unauthorized("Not authenticated"))
	}
	return p
}

// ListUsers godoc
// @Summary      List students or companies
// @Tags         admin
// @Produce      json
// @Param        role       query     string  true   "student or company"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := pageParams(c)
	users, total, err := h.adminUC.ListUsers(c.Request.Context(), c.Query("role"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users", gin.H{
		"users":     users,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateUser godoc
// @Summary      Update a student or company account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        role  path      string                  true  "student or company"
// @Param        id    path      string                  true  "Account ID"
// @Param        body  body      AdminUpdateUserRequest  true  "Fields to change"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/users/{role}/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	admin := principalOrAbort(c)
	if admin == nil {
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	user, err := h.adminUC.UpdateUser(c.Request.Context(), admin, c.Param("role"), c.Param("id"), domain.AdminUserUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// DeleteUser godoc
// @Summary      Delete a student or company account
// @Tags         admin
// @Produce      json
// @Param        role  path      string  true  "student or company"
// @Param        id    path      string  true  "Account ID"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/users/{role}/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	admin := principalOrAbort(c)
	if admin == nil {
		return
	}

	if err := h.adminUC.DeleteUser(c.Request.Context(), admin, c.Param("role"), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", nil)
}

// CreateCategory godoc
// @Summary      Create a job category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      CreateCategoryRequest  true  "Category"
// @Success      201   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /admin/categories [post]
// @Security     BearerAuth
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	admin := principalOrAbort(c)
	if admin == nil {
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
	if err := h.adminUC.CreateCategory(c.Request.Context(), admin, category); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Category created", category)
}

// ListCategories godoc
// @Summary      List job categories
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/categories [get]
// @Security     BearerAuth
func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.adminUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Categories", categories)
}

// UpdateCategory godoc
// @Summary      Update a job category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Category ID"
// @Param        body  body      UpdateCategoryRequest  true  "Fields to change"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/categories/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	admin := principalOrAbort(c)
	if admin == nil {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	category, err := h.adminUC.UpdateCategory(c.Request.Context(), admin, c.Param("id"), domain.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		IsActive:    req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory godoc
// @Summary      Delete a job category
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/categories/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	admin := principalOrAbort(c)
	if admin == nil {
		return
	}

	if err := h.adminUC.DeleteCategory(c.Request.Context(), admin, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted", nil)
}

// ListJobPosts godoc
// @Summary      List all vacancies for moderation
// @Tags         admin
// @Produce      json
// @Param        status     query     string  false  "Filter by status"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /admin/jobs [get]
// @Security     BearerAuth
func (h *AdminHandler) ListJobPosts(c *gin.Context) {
	page, pageSize := pageParams(c)
	vacancies, total, err := h.adminUC.ListJobPosts(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posts", gin.H{
		"vacancies": vacancies,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateJobStatus godoc
// @Summary      Moderate a vacancy's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        companyId  path      string               true  "Company ID"
// @Param        vacancyId  path      string               true  "Vacancy ID"
// @Param        body       body      ChangeStatusRequest  true  "Target status"
// @Success      200        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Router       /admin/jobs/{companyId}/{vacancyId}/status [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateJobStatus(c *gin.Context) {
	admin := principalOrAbort(c)
	if admin == nil {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	vacancy, err := h.adminUC.UpdateJobStatus(c.Request.Context(), admin, c.Param("companyId"), c.Param("vacancyId"), domain.VacancyStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy status updated", vacancy)
}

// ListSubscriptions godoc
// @Summary      List company subscriptions
// @Tags         admin
// @Produce      json
// @Param        status     query     string  false  "Filter by status"
// @Param        plan_type  query     string  false  "Filter by plan type"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /admin/subscriptions [get]
// @Security     BearerAuth
func (h *AdminHandler) ListSubscriptions(c *gin.Context) {
	page, pageSize := pageParams(c)
	subs, total, err := h.adminUC.ListSubscriptions(c.Request.Context(), c.Query("status"), c.Query("plan_type"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Subscriptions", gin.H{
		"subscriptions": subs,
		"total":         total,
		"page":          page,
		"page_size":     pageSize,
	})
}

// UpdateSubscription godoc
// @Summary      Update a company subscription
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Subscription ID"
// @Param        body  body      UpdateSubscriptionRequest  true  "Fields to change"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/subscriptions/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateSubscription(c *gin.Context) {
	admin := principalOrAbort(c)
	if admin == nil {
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	update := domain.SubscriptionUpdate{
		PlanType:      req.PlanType,
		PlanName:      req.PlanName,
		Price:         req.Price,
		BillingCycle:  req.BillingCycle,
		EndDate:       req.EndDate,
		PaymentMethod: req.PaymentMethod,
	}
	if req.Status != nil {
		s := domain.SubscriptionStatus(*req.Status)
		update.Status = &s
	}

	sub, err := h.adminUC.UpdateSubscription(c.Request.Context(), admin, c.Param("id"), update)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Subscription updated", sub)
}

// CreateNotification godoc
// @Summary      Create a platform notification
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      CreateNotificationRequest  true  "Notification"
// @Success      201   {object}  response.Response
// @Router       /admin/notifications [post]
// @Security     BearerAuth
func (h *AdminHandler) CreateNotification(c *gin.Context) {
	admin := principalOrAbort(c)
	if admin == nil {
		return
	}

	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	notification := &domain.Notification{
		Title:          req.Title,
		Message:        req.Message,
		Type:           req.Type,
		Priority:       req.Priority,
		TargetAudience: req.TargetAudience,
		ExpiresAt:      req.ExpiresAt,
		ActionURL:      req.ActionURL,
		ActionText:     req.ActionText,
	}
	if req.ScheduledAt != nil {
		notification.ScheduledAt = *req.ScheduledAt
	}

	if err := h.adminUC.CreateNotification(c.Request.Context(), admin, notification); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Notification created", notification)
}

// ListNotifications godoc
// @Summary      List platform notifications
// @Tags         admin
// @Produce      json
// @Param        target_audience  query     string  false  "Filter by audience"
// @Param        page             query     int     false  "Page number"
// @Param        page_size        query     int     false  "Page size"
// @Success      200              {object}  response.Response
// @Router       /admin/notifications [get]
// @Security     BearerAuth
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	page, pageSize := pageParams(c)
	notifications, total, err := h.adminUC.ListNotifications(c.Request.Context(), c.Query("target_audience"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notifications", gin.H{
		"notifications": notifications,
		"total":         total,
		"page":          page,
		"page_size":     pageSize,
	})
}

// UpdateNotification godoc
// @Summary      Update a platform notification
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Notification ID"
// @Param        body  body      UpdateNotificationRequest  true  "Fields to change"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/notifications/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateNotification(c *gin.Context) {
	admin := principalOrAbort(c)
	if admin == nil {
		return
	}

	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	notification, err := h.adminUC.UpdateNotification(c.Request.Context(), admin, c.Param("id"), domain.NotificationUpdate{
		Title:          req.Title,
		Message:        req.Message,
		Type:           req.Type,
		Priority:       req.Priority,
		TargetAudience: req.TargetAudience,
		IsActive:       req.IsActive,
		ExpiresAt:      req.ExpiresAt,
		ActionURL:      req.ActionURL,
		ActionText:     req.ActionText,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification updated", notification)
}

// DeleteNotification godoc
// @Summary      Delete a platform notification
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/notifications/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteNotification(c *gin.Context) {
	admin := principalOrAbort(c)
	if admin == nil {
		return
	}

	if err := h.adminUC.DeleteNotification(c.Request.Context(), admin, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification deleted", nil)
}

// Analytics godoc
// @Summary      Platform analytics report
// @Tags         admin
// @Produce      json
// @Param        period  query     string  false  "7d | 30d | 90d | 1y (default 30d)"
// @Success      200     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /admin/analytics [get]
// @Security     BearerAuth
func (h *AdminHandler) Analytics(c *gin.Context) {
	admin := principalOrAbort(c)
	if admin == nil {
		return
	}

	report, err := h.adminUC.Analytics(c.Request.Context(), admin, c.Query("period"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Analytics report", report)
}

// GetProfile godoc
// @Summary      Get own admin profile
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/profile [get]
// @Security     BearerAuth
func (h *AdminHandler) GetProfile(c *gin.Context) {
	adminID := c.GetString(string(domain.KeyUserID))
	admin, err := h.adminUC.GetProfile(c.Request.Context(), adminID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Admin profile", admin)
}

// UpdateProfile godoc
// @Summary      Update own admin profile
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateAdminProfileRequest  true  "Profile fields"
// @Success      200   {object}  response.Response
// @Router       /admin/profile [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var req UpdateAdminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	adminID := c.GetString(string(domain.KeyUserID))
	admin, err := h.adminUC.UpdateProfile(c.Request.Context(), adminID, req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", admin)
}
