package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hellofixo/fixit-admin/internal/audit"
	"github.com/hellofixo/fixit-admin/internal/funcs"
	"github.com/hellofixo/fixit-admin/internal/httperr"
	"github.com/hellofixo/fixit-admin/internal/httpresp"
	"github.com/hellofixo/fixit-admin/internal/middleware"
	"github.com/hellofixo/fixit-admin/internal/models"
	"github.com/hellofixo/fixit-admin/internal/storage"
	"github.com/hellofixo/fixit-admin/internal/store"
)

const documentURLExpiry = 10 * time.Minute

// ======================================================
// HANDLER
// ======================================================

type TechnicianHandler struct {
	store     store.Store
	documents *storage.DocumentStore
	functions *funcs.Client
	audit     *audit.Dispatcher
}

func NewTechnicianHandler(
	st store.Store,
	documents *storage.DocumentStore,
	functions *funcs.Client,
	auditDispatcher *audit.Dispatcher,
) *TechnicianHandler {
	return &TechnicianHandler{
		store:     st,
		documents: documents,
		functions: functions,
		audit:     auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type VerifyTechnicianRequest struct {
	IsVerified         *bool   `json:"is_verified,omitempty"`
	VerificationStatus *string `json:"verification_status,omitempty"`
	Remark             *string `json:"remark,omitempty"`
}

type VerificationDecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
	Remarks  string `json:"remarks"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *TechnicianHandler) List(c *gin.Context) {
	listPage[models.Technician](c, h.store, "technicians", nil)
}

// Get returns one technician with short-lived view URLs for the
// identity documents the verification modal previews.
func (h *TechnicianHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var tech models.Technician
	if err := h.store.GetByID(c.Request.Context(), "technicians", id, &tech); err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "technician_not_found", "No technician with that id.")
			return
		}
		httperr.Upstream(c, "technician_get_failed", err)
		return
	}

	documents := gin.H{}
	for label, key := range map[string]string{
		"aadhaar_front": tech.AadhaarFrontKey,
		"aadhaar_back":  tech.AadhaarBackKey,
		"selfie":        tech.SelfieKey,
	} {
		url, err := h.documents.ViewURL(c.Request.Context(), key, documentURLExpiry)
		if err != nil {
			httperr.Upstream(c, "document_url_failed", err)
			return
		}
		documents[label] = url
	}

	httpresp.OK(c, gin.H{
		"technician": tech,
		"documents":  documents,
	})
}

// ======================================================
// VERIFY (direct store patch)
// ======================================================

func (h *TechnicianHandler) Verify(c *gin.Context) {
	id := c.Param("id")
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req VerifyTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid verification payload.")
		return
	}

	patch := map[string]any{}
	if req.IsVerified != nil {
		patch["is_verified"] = *req.IsVerified
	}
	if req.VerificationStatus != nil {
		patch["verification_status"] = *req.VerificationStatus
	}
	if req.Remark != nil {
		patch["remark"] = *req.Remark
	}

	if len(patch) == 0 {
		httperr.BadRequest(c, "empty_patch", "Nothing to update.")
		return
	}

	err := h.store.Update(c.Request.Context(), "technicians", patch, store.Filter{"id": id})
	if err != nil {
		httperr.Upstream(c, "technician_update_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "technician_verified",
		Entity:   "technician",
		EntityID: id,
		Metadata: patch,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// DECISION (external function pass-through)
// ======================================================

// Decision forwards the approve/reject call to the verification
// function, which owns the downstream notifications and state.
func (h *TechnicianHandler) Decision(c *gin.Context) {
	id := c.Param("id")
	actorID := c.MustGet(middleware.ContextUserID).(string)
	token := c.MustGet(middleware.ContextToken).(string)

	var req VerificationDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "decision must be approve or reject.")
		return
	}

	err := h.functions.SubmitVerificationDecision(c.Request.Context(), token, funcs.VerificationDecisionInput{
		TechnicianID: id,
		Decision:     req.Decision,
		Remarks:      req.Remarks,
	})
	if err != nil {
		httperr.Upstream(c, "decision_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "technician_decision_" + req.Decision,
		Entity:   "technician",
		EntityID: id,
		Metadata: gin.H{"remarks": req.Remarks},
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
