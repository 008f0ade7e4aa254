package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Email, req.Password)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User signed up successfully", "data": gin.H{"user": user}})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "User logged in successfully", "data": gin.H{"token": token, "user": user}})
}

// POST /auth/logout — tokens are stateless, the client just drops its copy.
func (a *AuthController) Logout(c *gin.Context) {
	resp.Message(c, "User logged out successfully")
}

// GET /auth/user
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.Profile(utils.CurrentUserID(c))
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"user": user})
}
