package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
	ucAccount "github.com/BruksfildServices01/connect-marketplace/internal/usecase/account"
)

type AuthHandler struct {
	registerProvider *ucAccount.RegisterServiceProvider
	registerManager  *ucAccount.RegisterSystemManager
	login            *ucAccount.Login
	refresh          *ucAccount.RefreshAccess
}

func NewAuthHandler(
	registerProvider *ucAccount.RegisterServiceProvider,
	registerManager *ucAccount.RegisterSystemManager,
	login *ucAccount.Login,
	refresh *ucAccount.RefreshAccess,
) *AuthHandler {
	return &AuthHandler{
		registerProvider: registerProvider,
		registerManager:  registerManager,
		login:            login,
		refresh:          refresh,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName   string  `json:"first_name" binding:"required,max=150"`
	LastName    string  `json:"last_name" binding:"required,max=150"`
	Email       string  `json:"email" binding:"required,email,max=254"`
	Password    string  `json:"password" binding:"required,min=8"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	CompanyName *string `json:"company_name" binding:"omitempty,max=255"`
}

func (r RegisterRequest) input() ucAccount.RegistrationInput {
	return ucAccount.RegistrationInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
		CompanyName: r.CompanyName,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type LoginResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterServiceProvider(c *gin.Context, _ *models.User) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.registerProvider.Execute(c.Request.Context(), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, serviceProviderView(profile))
}

func (h *AuthHandler) RegisterSystemManager(c *gin.Context, caller *models.User) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	manager, err := h.registerManager.Execute(c.Request.Context(), caller, ucAccount.SystemManagerInput{
		RegistrationInput: req.input(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, systemManagerView(&manager.User, manager))
}

func (h *AuthHandler) Login(c *gin.Context, _ *models.User) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, LoginResponse{
		Access:    res.Tokens.Access,
		Refresh:   res.Tokens.Refresh,
		ID:        res.User.ID,
		Email:     res.User.Email,
		Role:      res.User.Role,
		FirstName: res.User.FirstName,
		LastName:  res.User.LastName,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context, _ *models.User) {
	var req RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	access, err := h.refresh.Execute(req.Refresh)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"access": access})
}
