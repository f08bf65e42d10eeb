package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hellofixo/fixit-admin/internal/models"
	"github.com/hellofixo/fixit-admin/internal/store"
)

// The read-only registries share one shape: a recency-ordered page
// plus total count, nothing else.

type ReferralHandler struct {
	store store.Store
}

func NewReferralHandler(st store.Store) *ReferralHandler {
	return &ReferralHandler{store: st}
}

func (h *ReferralHandler) List(c *gin.Context) {
	listPage[models.ReferralBooking](c, h.store, "referral_bookings", nil)
}

type EarningHandler struct {
	store store.Store
}

func NewEarningHandler(st store.Store) *EarningHandler {
	return &EarningHandler{store: st}
}

func (h *EarningHandler) List(c *gin.Context) {
	listPage[models.PlatformEarning](c, h.store, "platform_earnings", nil)
}

type TechnicianStatsHandler struct {
	store store.Store
}

func NewTechnicianStatsHandler(st store.Store) *TechnicianStatsHandler {
	return &TechnicianStatsHandler{store: st}
}

func (h *TechnicianStatsHandler) List(c *gin.Context) {
	listPage[models.TechnicianStat](c, h.store, "technician_stats", nil)
}
