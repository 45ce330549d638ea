package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/table"
	"github.com/gin-gonic/gin"
)

// ParseObserver receives one observation per successful parse. The server's
// Prometheus metrics implement it.
type ParseObserver interface {
	ObserveParse(mode string, items int, elapsed time.Duration)
}

// ParseRequest is the body of POST /parse. Output is a pointer so that an
// empty string (valid, parses to nothing) is distinguishable from a missing
// field.
type ParseRequest struct {
	Output *string `json:"output" binding:"required"`
	Mode   string  `json:"mode"`
}

// ParseResponse is returned by POST /parse. Data holds a Table, a record list
// or a single record depending on Mode, or the raw text for raw mode.
type ParseResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
	Data   any    `json:"data"`
	Count  int    `json:"count"`
}

// DefaultParseMode is used when a request leaves mode empty.
const DefaultParseMode = table.ModeTable

// HandleParse parses raw CLI table output posted by remote test agents and
// returns it projected in the requested mode.
func HandleParse(observer ParseObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ParseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logging.Warn("Parse: invalid request body: %v", err)
			abortWithBindError(c, err)
			return
		}

		mode := DefaultParseMode
		if req.Mode != "" {
			parsed, err := table.ParseMode(req.Mode)
			if err != nil {
				logging.Warn("Parse: %v", err)
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "Invalid parse mode",
					"details": err.Error(),
				})
				return
			}
			mode = parsed
		}

		start := time.Now()
		projection := table.Project(*req.Output, mode)
		elapsed := time.Since(start)

		count := projection.Count()
		if observer != nil {
			observer.ObserveParse(string(mode), count, elapsed)
		}
		logging.Debug("Parse: mode=%s bytes=%d items=%d in %v", mode, len(*req.Output), count, elapsed)

		c.JSON(http.StatusOK, ParseResponse{
			Status: "success",
			Mode:   string(projection.Mode),
			Data:   projection.Data(),
			Count:  count,
		})
	}
}

// abortWithBindError maps body decoding failures to 413 for oversized bodies
// and 400 otherwise.
func abortWithBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":   "Request body too large",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}
