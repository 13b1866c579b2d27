package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
	ucAccount "github.com/BruksfildServices01/connect-marketplace/internal/usecase/account"
)

type MeHandler struct {
	repo           domain.Repository
	updateInfo     *ucAccount.UpdateInfo
	changePassword *ucAccount.ChangePassword
}

func NewMeHandler(
	repo domain.Repository,
	updateInfo *ucAccount.UpdateInfo,
	changePassword *ucAccount.ChangePassword,
) *MeHandler {
	return &MeHandler{
		repo:           repo,
		updateInfo:     updateInfo,
		changePassword: changePassword,
	}
}

// --------- Requests ---------

type UpdateInfoRequest struct {
	FirstName   *string `json:"first_name" binding:"omitempty,max=150"`
	LastName    *string `json:"last_name" binding:"omitempty,max=150"`
	Email       *string `json:"email" binding:"omitempty,email,max=254"`
	PhoneNumber *string `json:"phone_number"`
	CompanyName *string `json:"company_name" binding:"omitempty,max=255"`
}

func (r UpdateInfoRequest) input() ucAccount.UpdateInfoInput {
	return ucAccount.UpdateInfoInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		CompanyName: r.CompanyName,
	}
}

type UpdatePasswordRequest struct {
	PreviousPassword string `json:"previous_password" binding:"required"`
	NewPassword      string `json:"new_password"`
	ConfirmPassword  string `json:"confirm_password"`
}

// --------- Handlers ---------

func (h *MeHandler) FetchServiceProvider(c *gin.Context, caller *models.User) {
	p, err := ucAccount.LoadProfile(c.Request.Context(), h.repo, caller.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, accountView(p))
}

func (h *MeHandler) FetchSystemManager(c *gin.Context, caller *models.User) {
	manager, err := h.repo.FindSystemManager(c.Request.Context(), caller.ID)
	if err != nil && !httperr.IsNotFound(err) {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, systemManagerView(caller, manager))
}

func (h *MeHandler) UpdateInfo(c *gin.Context, caller *models.User) {
	var req UpdateInfoRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.updateInfo.Execute(c.Request.Context(), caller, caller.ID, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, accountView(p))
}

func (h *MeHandler) UpdatePassword(c *gin.Context, caller *models.User) {
	var req UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.changePassword.Execute(
		c.Request.Context(),
		caller.ID,
		req.PreviousPassword,
		req.NewPassword,
		req.ConfirmPassword,
	); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Password updated successfully")
}
