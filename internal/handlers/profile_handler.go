package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hellofixo/fixit-admin/internal/audit"
	"github.com/hellofixo/fixit-admin/internal/httperr"
	"github.com/hellofixo/fixit-admin/internal/httpresp"
	"github.com/hellofixo/fixit-admin/internal/middleware"
	"github.com/hellofixo/fixit-admin/internal/models"
	"github.com/hellofixo/fixit-admin/internal/store"
)

type ProfileHandler struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewProfileHandler(st store.Store, auditDispatcher *audit.Dispatcher) *ProfileHandler {
	return &ProfileHandler{store: st, audit: auditDispatcher}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	FullName         *string `json:"full_name,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Role             *string `json:"role,omitempty"`
	OnboardingStatus *string `json:"onboarding_status,omitempty"`
	IsVerified       *bool   `json:"is_verified,omitempty"`
}

// --------- Handlers ---------

func (h *ProfileHandler) List(c *gin.Context) {
	listPage[models.Profile](c, h.store, "profiles", nil)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var profile models.Profile
	if err := h.store.GetByID(c.Request.Context(), "profiles", id, &profile); err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "profile_not_found", "No profile with that id.")
			return
		}
		httperr.Upstream(c, "profile_get_failed", err)
		return
	}

	httpresp.OK(c, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id := c.Param("id")
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile payload.")
		return
	}

	patch := map[string]any{}
	if req.FullName != nil {
		patch["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Role != nil {
		patch["role"] = *req.Role
	}
	if req.OnboardingStatus != nil {
		patch["onboarding_status"] = *req.OnboardingStatus
	}
	if req.IsVerified != nil {
		patch["is_verified"] = *req.IsVerified
	}

	if len(patch) == 0 {
		httperr.BadRequest(c, "empty_patch", "Nothing to update.")
		return
	}
	patch["updated_at"] = time.Now().UTC()

	if err := h.store.Update(c.Request.Context(), "profiles", patch, store.Filter{"id": id}); err != nil {
		httperr.Upstream(c, "profile_update_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "profile_updated",
		Entity:   "profile",
		EntityID: id,
		Metadata: patch,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
