package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
	ucAccount "github.com/BruksfildServices01/connect-marketplace/internal/usecase/account"
)

// SystemManagerHandler serves the admin-only management endpoints; the
// route guard has already checked the caller's role.
type SystemManagerHandler struct {
	repo   domain.Repository
	update *ucAccount.UpdateSystemManager
	remove *ucAccount.DeleteSystemManager
}

func NewSystemManagerHandler(
	repo domain.Repository,
	update *ucAccount.UpdateSystemManager,
	remove *ucAccount.DeleteSystemManager,
) *SystemManagerHandler {
	return &SystemManagerHandler{
		repo:   repo,
		update: update,
		remove: remove,
	}
}

func (h *SystemManagerHandler) List(c *gin.Context, _ *models.User) {
	managers, err := h.repo.ListSystemManagers(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]SystemManagerResponse, 0, len(managers))
	for i := range managers {
		out = append(out, systemManagerView(&managers[i].User, &managers[i]))
	}
	httpresp.List(c, out)
}

func (h *SystemManagerHandler) Get(c *gin.Context, _ *models.User) {
	id, ok := pathID(c, "System manager")
	if !ok {
		return
	}

	manager, err := h.repo.FindSystemManager(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, systemManagerView(&manager.User, manager))
}

func (h *SystemManagerHandler) Update(c *gin.Context, caller *models.User) {
	id, ok := pathID(c, "System manager")
	if !ok {
		return
	}

	var req UpdateInfoRequest
	if !bindJSON(c, &req) {
		return
	}

	manager, err := h.update.Execute(c.Request.Context(), caller, id, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, systemManagerView(&manager.User, manager))
}

func (h *SystemManagerHandler) Delete(c *gin.Context, caller *models.User) {
	id, ok := pathID(c, "System manager")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), caller, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
