package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hellofixo/fixit-admin/internal/audit"
	"github.com/hellofixo/fixit-admin/internal/funcs"
	"github.com/hellofixo/fixit-admin/internal/httperr"
	"github.com/hellofixo/fixit-admin/internal/httpresp"
	"github.com/hellofixo/fixit-admin/internal/middleware"
	"github.com/hellofixo/fixit-admin/internal/models"
	"github.com/hellofixo/fixit-admin/internal/store"
	ucDashboard "github.com/hellofixo/fixit-admin/internal/usecase/dashboard"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	store     store.Store
	listUC    *ucDashboard.ListBookings
	functions *funcs.Client
	audit     *audit.Dispatcher
}

func NewBookingHandler(
	st store.Store,
	listUC *ucDashboard.ListBookings,
	functions *funcs.Client,
	auditDispatcher *audit.Dispatcher,
) *BookingHandler {
	return &BookingHandler{
		store:     st,
		listUC:    listUC,
		functions: functions,
		audit:     auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
	MapURL       string `json:"map_url" binding:"required"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), page, limit)
	if err != nil {
		httperr.Upstream(c, "bookings_list_failed", err)
		return
	}

	httpresp.Page(c, result)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var booking models.Booking
	if err := h.store.GetByID(c.Request.Context(), "booking", id, &booking); err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "booking_not_found", "No booking with that id.")
			return
		}
		httperr.Upstream(c, "booking_get_failed", err)
		return
	}

	httpresp.OK(c, booking)
}

// TechniciansForPincode backs the assignment modal: every technician
// serving the booking's pincode.
func (h *BookingHandler) TechniciansForPincode(c *gin.Context) {
	pincode := c.Query("pincode")
	if pincode == "" {
		httperr.BadRequest(c, "missing_pincode", "pincode query parameter is required.")
		return
	}

	var techs []models.Technician
	_, err := h.store.List(c.Request.Context(), "technicians", &techs, store.ListParams{
		Filter:  store.Filter{"pincode": pincode, "is_active": true},
		OrderBy: "full_name",
	})
	if err != nil {
		httperr.Upstream(c, "technicians_list_failed", err)
		return
	}

	httpresp.List(c, techs)
}

// ======================================================
// ASSIGN (external function pass-through)
// ======================================================

func (h *BookingHandler) AssignTechnician(c *gin.Context) {
	bookingID := c.Param("id")
	actorID := c.MustGet(middleware.ContextUserID).(string)
	token := c.MustGet(middleware.ContextToken).(string)

	var req AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "technician_id and map_url are required.")
		return
	}

	err := h.functions.AssignTechnician(c.Request.Context(), token, funcs.AssignTechnicianInput{
		BookingID:    bookingID,
		TechnicianID: req.TechnicianID,
		MapURL:       req.MapURL,
	})
	if err != nil {
		httperr.Upstream(c, "assign_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "technician_assigned",
		Entity:   "booking",
		EntityID: bookingID,
		Metadata: gin.H{"technician_id": req.TechnicianID},
	})

	// Caller refreshes its own view; no cached state here.
	c.JSON(http.StatusOK, gin.H{"success": true})
}
