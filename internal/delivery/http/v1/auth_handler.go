package v1

import (
	"net/http"

	"yuva-hire-backend/internal/delivery/http/response"
	"yuva-hire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(r Routes, authUC domain.AuthUsecase, loginLimit gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	public := r.Public.Group("/auth")
	{
		public.POST("/register", handler.Register)
		public.POST("/login", loginLimit, handler.Login)
	}

	me := r.Authed.Group("/auth")
	{
		me.GET("/me", handler.Me)
		me.PUT("/me", handler.UpdateMe)
	}
}

type RegisterRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8,max=72"`
	Name       string  `json:"name" binding:"required,max=100"`
	Role       string  `json:"role" binding:"required,user_role"`
	College    string  `json:"college" binding:"required,max=200"`
	Department *string `json:"department"`
	StudentID  *string `json:"studentId"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	Name       *string `json:"name"`
	Department *string `json:"department"`
	StudentID  *string `json:"studentId"`
}

type AuthResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type UserResponse struct {
	User *domain.User `json:"user"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a student or admin account and return a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Registration"
// @Success      201   {object}  AuthResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      409   {object}  response.ErrorBody
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Role:       req.Role,
		College:    req.College,
		Department: req.Department,
		StudentID:  req.StudentID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	created(c, AuthResponse{User: user, Token: token})
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  AuthResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Failure      429   {object}  response.ErrorBody
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password, domain.LoginMeta{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: response.RequestID(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: user, Token: token})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  response.ErrorBody
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, UserResponse{User: currentUser(c)})
}

// UpdateMe godoc
// @Summary      Update profile fields
// @Description  Update name, department and student id. Omitted fields are unchanged.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateMeRequest  true  "Profile fields"
// @Success      200   {object}  UserResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Router       /auth/me [put]
// @Security     BearerAuth
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authUC.UpdateProfile(c.Request.Context(), currentUser(c).ID, domain.ProfileUpdate{
		Name:       req.Name,
		Department: req.Department,
		StudentID:  req.StudentID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: user})
}
