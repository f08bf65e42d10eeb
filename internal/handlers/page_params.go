package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hellofixo/fixit-admin/internal/dto"
	"github.com/hellofixo/fixit-admin/internal/httperr"
	"github.com/hellofixo/fixit-admin/internal/httpresp"
	"github.com/hellofixo/fixit-admin/internal/store"
	ucDashboard "github.com/hellofixo/fixit-admin/internal/usecase/dashboard"
)

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// listPage serves the common shape of every registry listing: one
// recency-ordered page plus the exact total count. Store failures are
// surfaced to the caller; an empty page is not an error.
func listPage[T any](
	c *gin.Context,
	st store.Store,
	table string,
	filter store.Filter,
) {
	page, limit := pageParams(c)
	page, limit, offset := ucDashboard.NormalizePage(page, limit)

	var rows []T
	total, err := st.List(c.Request.Context(), table, &rows, store.ListParams{
		Filter:  filter,
		OrderBy: "created_at",
		Desc:    true,
		Offset:  offset,
		Limit:   limit,
		Count:   true,
	})
	if err != nil {
		httperr.Upstream(c, "list_failed", err)
		return
	}

	httpresp.Page(c, dto.Page[T]{
		Data:  rows,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
