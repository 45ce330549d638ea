package handlers

import (
	"net/http"

	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/table"
	"github.com/gin-gonic/gin"
)

// RenderRequest is the body of POST /render. list and show modes read
// Records; table mode reads Table.
type RenderRequest struct {
	Mode    string         `json:"mode" binding:"required,oneof=list show table"`
	Records []table.Record `json:"records"`
	Table   *table.Table   `json:"table"`
}

// HandleRender turns records back into the CLI's box table layout, letting
// tests build expected output fixtures from structured data.
func HandleRender() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RenderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logging.Warn("Render: invalid request body: %v", err)
			abortWithBindError(c, err)
			return
		}

		var out string
		switch table.Mode(req.Mode) {
		case table.ModeList:
			out = table.RenderRecords(req.Records)
		case table.ModeShow:
			var obj table.Record
			for _, r := range req.Records {
				obj.Merge(r)
			}
			out = table.RenderObject(obj)
		case table.ModeTable:
			if req.Table == nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "Invalid request body",
					"details": "table mode requires a table",
				})
				return
			}
			out = table.Render(*req.Table)
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   out,
		})
	}
}
