package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hellofixo/fixit-admin/internal/audit"
	"github.com/hellofixo/fixit-admin/internal/httperr"
	"github.com/hellofixo/fixit-admin/internal/middleware"
	"github.com/hellofixo/fixit-admin/internal/models"
	"github.com/hellofixo/fixit-admin/internal/store"
)

type WalletHandler struct {
	store store.Store
	audit *audit.Dispatcher
}

func NewWalletHandler(st store.Store, auditDispatcher *audit.Dispatcher) *WalletHandler {
	return &WalletHandler{store: st, audit: auditDispatcher}
}

// --------- Requests ---------

type AdjustWalletRequest struct {
	MobileNumber string  `json:"mobile_number" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=credit debit"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Reason       string  `json:"reason"`
}

// --------- Handlers ---------

func (h *WalletHandler) List(c *gin.Context) {
	listPage[models.Wallet](c, h.store, "wallets", nil)
}

// Adjust applies a single credit or debit to a wallet balance. The
// wallet row is looked up by mobile number, the key customers are
// known by everywhere in the marketplace.
func (h *WalletHandler) Adjust(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req AdjustWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "mobile_number, type and a positive amount are required.")
		return
	}

	var wallet models.Wallet
	var wallets []models.Wallet
	_, err := h.store.List(c.Request.Context(), "wallets", &wallets, store.ListParams{
		Filter: store.Filter{"mobile_number": req.MobileNumber},
		Limit:  1,
	})
	if err != nil {
		httperr.Upstream(c, "wallet_lookup_failed", err)
		return
	}
	if len(wallets) == 0 {
		httperr.NotFound(c, "wallet_not_found", "No wallet for that mobile number.")
		return
	}
	wallet = wallets[0]

	delta := req.Amount
	if req.Type == "debit" {
		delta = -delta
	}

	newBalance := wallet.Balance + delta
	if newBalance < 0 {
		httperr.BadRequest(c, "insufficient_balance", "Debit would take the balance below zero.")
		return
	}

	err = h.store.Update(
		c.Request.Context(),
		"wallets",
		map[string]any{"balance": newBalance},
		store.Filter{"id": wallet.ID},
	)
	if err != nil {
		httperr.Upstream(c, "wallet_update_failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "wallet_adjusted",
		Entity:   "wallet",
		EntityID: wallet.ID,
		Metadata: gin.H{
			"type":   req.Type,
			"amount": req.Amount,
			"reason": req.Reason,
		},
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "balance": newBalance})
}
