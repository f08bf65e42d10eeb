package httpresp

import (
	"github.com/gin-gonic/gin"

	"github.com/hellofixo/fixit-admin/internal/dto"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// Page writes one page of a list view together with the exact total
// count the UI needs for its page-count computation.
func Page[T any](c *gin.Context, p dto.Page[T]) {
	if p.Data == nil {
		p.Data = []T{}
	}
	c.JSON(200, p)
}
