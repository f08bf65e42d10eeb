package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hellofixo/fixit-admin/internal/audit"
	"github.com/hellofixo/fixit-admin/internal/httperr"
	"github.com/hellofixo/fixit-admin/internal/httpresp"
	"github.com/hellofixo/fixit-admin/internal/middleware"
	"github.com/hellofixo/fixit-admin/internal/models"
	"github.com/hellofixo/fixit-admin/internal/store"
)

// ======================================================
// HANDLER
// ======================================================

type CategoryHandler struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewCategoryHandler(st store.Store, auditDispatcher *audit.Dispatcher) *CategoryHandler {
	return &CategoryHandler{store: st, audit: auditDispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCategoryRequest struct {
	Name              string  `json:"name" binding:"required"`
	Slug              string  `json:"slug" binding:"required"`
	BaseInspectionFee float64 `json:"base_inspection_fee"`
	IsActive          *bool   `json:"is_active,omitempty"`
}

type UpdateCategoryRequest struct {
	Name              *string  `json:"name,omitempty"`
	BaseInspectionFee *float64 `json:"base_inspection_fee,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

type CreateIssueRequest struct {
	CategoryID string  `json:"category_id" binding:"required"`
	Title      string  `json:"title" binding:"required"`
	IconURL    string  `json:"icon_url"`
	PriceMin   float64 `json:"price_min"`
	PriceMax   float64 `json:"price_max"`
}

type UpdateIssueRequest struct {
	Title    *string  `json:"title,omitempty"`
	IconURL  *string  `json:"icon_url,omitempty"`
	PriceMin *float64 `json:"price_min,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`
	IsActive *bool    `json:"is_active,omitempty"`
}

type categoryWithIssues struct {
	models.Category
	Issues []models.Issue `json:"issues"`
}

// ======================================================
// LIST (categories with their active issues)
// ======================================================

// ListWithIssues groups every active issue under its category in
// memory; the two tables are small and this avoids a join the store
// contract does not offer.
func (h *CategoryHandler) ListWithIssues(c *gin.Context) {
	ctx := c.Request.Context()

	var categories []models.Category
	_, err := h.store.List(ctx, "categories", &categories, store.ListParams{
		OrderBy: "created_at",
		Desc:    true,
	})
	if err != nil {
		httperr.Upstream(c, "categories_list_failed", err)
		return
	}

	var issues []models.Issue
	_, err = h.store.List(ctx, "issues", &issues, store.ListParams{
		Filter: store.Filter{"is_active": true},
	})
	if err != nil {
		httperr.Upstream(c, "issues_list_failed", err)
		return
	}

	byCategory := make(map[string][]models.Issue, len(categories))
	for _, issue := range issues {
		byCategory[issue.CategoryID] = append(byCategory[issue.CategoryID], issue)
	}

	out := make([]categoryWithIssues, 0, len(categories))
	for _, cat := range categories {
		grouped := byCategory[cat.ID]
		if grouped == nil {
			grouped = []models.Issue{}
		}
		out = append(out, categoryWithIssues{Category: cat, Issues: grouped})
	}

	httpresp.List(c, out)
}

// ======================================================
// CATEGORY CRUD
// ======================================================

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "name and slug are required.")
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	category := models.Category{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Slug:              strings.ToLower(strings.TrimSpace(req.Slug)),
		BaseInspectionFee: req.BaseInspectionFee,
		Active:            active,
	}

	if err := h.store.Insert(c.Request.Context(), "categories", &category); err != nil {
		httperr.Upstream(c, "category_create_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "category_created",
		Entity:   "category",
		EntityID: category.ID,
	})

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid category payload.")
		return
	}

	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.BaseInspectionFee != nil {
		patch["base_inspection_fee"] = *req.BaseInspectionFee
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	if len(patch) == 0 {
		httperr.BadRequest(c, "empty_patch", "Nothing to update.")
		return
	}

	if err := h.store.Update(c.Request.Context(), "categories", patch, store.Filter{"id": id}); err != nil {
		httperr.Upstream(c, "category_update_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "category_updated",
		Entity:   "category",
		EntityID: id,
		Metadata: patch,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	actorID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.store.Delete(c.Request.Context(), "categories", store.Filter{"id": id}); err != nil {
		httperr.Upstream(c, "category_delete_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "category_deleted",
		Entity:   "category",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// ISSUE CRUD
// ======================================================

func (h *CategoryHandler) CreateIssue(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "category_id and title are required.")
		return
	}

	issue := models.Issue{
		ID:         uuid.NewString(),
		CategoryID: req.CategoryID,
		Title:      req.Title,
		IconURL:    req.IconURL,
		PriceMin:   req.PriceMin,
		PriceMax:   req.PriceMax,
		Active:     true,
	}

	if err := h.store.Insert(c.Request.Context(), "issues", &issue); err != nil {
		httperr.Upstream(c, "issue_create_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "issue_created",
		Entity:   "issue",
		EntityID: issue.ID,
	})

	c.JSON(http.StatusCreated, issue)
}

func (h *CategoryHandler) UpdateIssue(c *gin.Context) {
	id := c.Param("id")
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid issue payload.")
		return
	}

	patch := map[string]any{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.IconURL != nil {
		patch["icon_url"] = *req.IconURL
	}
	if req.PriceMin != nil {
		patch["price_min"] = *req.PriceMin
	}
	if req.PriceMax != nil {
		patch["price_max"] = *req.PriceMax
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	if len(patch) == 0 {
		httperr.BadRequest(c, "empty_patch", "Nothing to update.")
		return
	}

	if err := h.store.Update(c.Request.Context(), "issues", patch, store.Filter{"id": id}); err != nil {
		httperr.Upstream(c, "issue_update_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "issue_updated",
		Entity:   "issue",
		EntityID: id,
		Metadata: patch,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CategoryHandler) DeleteIssue(c *gin.Context) {
	id := c.Param("id")
	actorID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.store.Delete(c.Request.Context(), "issues", store.Filter{"id": id}); err != nil {
		httperr.Upstream(c, "issue_delete_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "issue_deleted",
		Entity:   "issue",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
