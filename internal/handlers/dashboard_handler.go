package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hellofixo/fixit-admin/internal/httpresp"
	ucDashboard "github.com/hellofixo/fixit-admin/internal/usecase/dashboard"
)

type DashboardHandler struct {
	summary *ucDashboard.GetSummary
}

func NewDashboardHandler(summary *ucDashboard.GetSummary) *DashboardHandler {
	return &DashboardHandler{summary: summary}
}

// Summary never fails: aggregation errors collapse into the zeroed
// fallback view inside the use case.
func (h *DashboardHandler) Summary(c *gin.Context) {
	httpresp.OK(c, h.summary.Execute(c.Request.Context()))
}
