package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hellofixo/fixit-admin/internal/audit"
	"github.com/hellofixo/fixit-admin/internal/httperr"
	"github.com/hellofixo/fixit-admin/internal/middleware"
	"github.com/hellofixo/fixit-admin/internal/models"
	"github.com/hellofixo/fixit-admin/internal/store"
)

type CityHandler struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewCityHandler(st store.Store, auditDispatcher *audit.Dispatcher) *CityHandler {
	return &CityHandler{store: st, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateCityRequest struct {
	CityName             string  `json:"city_name" binding:"required"`
	IsActive             bool    `json:"is_active"`
	InspectionMultiplier float64 `json:"inspection_multiplier"`
	RepairMultiplier     float64 `json:"repair_multiplier"`
}

type ToggleCityRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// --------- Handlers ---------

func (h *CityHandler) List(c *gin.Context) {
	listPage[models.ServiceableCity](c, h.store, "serviceable_cities", nil)
}

func (h *CityHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "city_name is required.")
		return
	}

	if req.InspectionMultiplier <= 0 {
		req.InspectionMultiplier = 1
	}
	if req.RepairMultiplier <= 0 {
		req.RepairMultiplier = 1
	}

	city := models.ServiceableCity{
		ID:                   uuid.NewString(),
		CityName:             req.CityName,
		Active:               req.IsActive,
		InspectionMultiplier: req.InspectionMultiplier,
		RepairMultiplier:     req.RepairMultiplier,
	}

	if err := h.store.Insert(c.Request.Context(), "serviceable_cities", &city); err != nil {
		httperr.Upstream(c, "city_create_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "city_created",
		Entity:   "serviceable_city",
		EntityID: city.ID,
	})

	c.JSON(http.StatusCreated, city)
}

func (h *CityHandler) Toggle(c *gin.Context) {
	id := c.Param("id")
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req ToggleCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "is_active is required.")
		return
	}

	err := h.store.Update(
		c.Request.Context(),
		"serviceable_cities",
		map[string]any{"is_active": *req.IsActive},
		store.Filter{"id": id},
	)
	if err != nil {
		httperr.Upstream(c, "city_toggle_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "city_toggled",
		Entity:   "serviceable_city",
		EntityID: id,
		Metadata: gin.H{"is_active": *req.IsActive},
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
