package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/connect-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/connect-marketplace/internal/httperr"
	"github.com/BruksfildServices01/connect-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/connect-marketplace/internal/models"
	ucCatalog "github.com/BruksfildServices01/connect-marketplace/internal/usecase/catalog"
)

type CategoryHandler struct {
	repo   domain.Repository
	create *ucCatalog.CreateCategory
	update *ucCatalog.UpdateCategory
	remove *ucCatalog.DeleteCategory
}

func NewCategoryHandler(
	repo domain.Repository,
	create *ucCatalog.CreateCategory,
	update *ucCatalog.UpdateCategory,
	remove *ucCatalog.DeleteCategory,
) *CategoryHandler {
	return &CategoryHandler{
		repo:   repo,
		create: create,
		update: update,
		remove: remove,
	}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	CategoryName string  `json:"category_name" binding:"required,max=255"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"is_active"`
}

type UpdateCategoryRequest struct {
	CategoryName *string `json:"category_name" binding:"omitempty,max=255"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"is_active"`
}

// --------- Handlers ---------

func (h *CategoryHandler) List(c *gin.Context, _ *models.User) {
	categories, err := h.repo.ListCategories(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, categories)
}

func (h *CategoryHandler) Get(c *gin.Context, _ *models.User) {
	id, ok := pathID(c, "Service category")
	if !ok {
		return
	}

	category, err := h.repo.GetCategory(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, category)
}

func (h *CategoryHandler) Create(c *gin.Context, caller *models.User) {
	var req CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.create.Execute(c.Request.Context(), caller, ucCatalog.CategoryInput{
		CategoryName: &req.CategoryName,
		Description:  req.Description,
		IsActive:     req.IsActive,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, category)
}

func (h *CategoryHandler) Update(c *gin.Context, caller *models.User) {
	id, ok := pathID(c, "Service category")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.update.Execute(c.Request.Context(), caller, id, ucCatalog.CategoryInput{
		CategoryName: req.CategoryName,
		Description:  req.Description,
		IsActive:     req.IsActive,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, category)
}

func (h *CategoryHandler) Delete(c *gin.Context, caller *models.User) {
	id, ok := pathID(c, "Service category")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), caller, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Service category deleted successfully")
}
