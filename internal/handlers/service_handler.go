package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
	ucCatalog "github.com/BruksfildServices01/connect-marketplace/internal/usecase/catalog"
)

type ServiceHandler struct {
	repo   domain.Repository
	create *ucCatalog.CreateService
	update *ucCatalog.UpdateService
	remove *ucCatalog.DeleteService
}

func NewServiceHandler(
	repo domain.Repository,
	create *ucCatalog.CreateService,
	update *ucCatalog.UpdateService,
	remove *ucCatalog.DeleteService,
) *ServiceHandler {
	return &ServiceHandler{
		repo:   repo,
		create: create,
		update: update,
		remove: remove,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Category    *uint   `json:"category" binding:"required"`
	ServiceName string  `json:"service_name" binding:"required,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateServiceRequest struct {
	Category    *uint   `json:"category"`
	ServiceName *string `json:"service_name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// --------- Handlers ---------

// List returns every service, optionally narrowed with ?category=<id>.
func (h *ServiceHandler) List(c *gin.Context, _ *models.User) {
	var categoryID *uint
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.Validation(c, httperr.Invalid("category", "A valid integer is required."))
			return
		}
		v := uint(id)
		categoryID = &v
	}

	services, err := h.repo.ListServices(c.Request.Context(), categoryID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, serviceViews(services))
}

func (h *ServiceHandler) Get(c *gin.Context, _ *models.User) {
	id, ok := pathID(c, "Service")
	if !ok {
		return
	}

	service, err := h.repo.GetService(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, serviceView(service))
}

func (h *ServiceHandler) Create(c *gin.Context, caller *models.User) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	service, err := h.create.Execute(c.Request.Context(), caller, ucCatalog.ServiceInput{
		CategoryID:  req.Category,
		ServiceName: &req.ServiceName,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, serviceView(service))
}

func (h *ServiceHandler) Update(c *gin.Context, caller *models.User) {
	id, ok := pathID(c, "Service")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	service, err := h.update.Execute(c.Request.Context(), caller, id, ucCatalog.ServiceInput{
		CategoryID:  req.Category,
		ServiceName: req.ServiceName,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, serviceView(service))
}

func (h *ServiceHandler) Delete(c *gin.Context, caller *models.User) {
	id, ok := pathID(c, "Service")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), caller, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
