package evaluation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registration-backend/internal/shared/server/respond"
)

// Handler exposes the accuracy report over HTTP.
type Handler struct {
	Eval *Evaluator
}

// NewHandler constructs a Handler.
func NewHandler(eval *Evaluator) *Handler {
	return &Handler{Eval: eval}
}

// RegisterRoutes attaches evaluation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/evaluation", h.report)
	rg.GET("/evaluation/:name", h.single)
}

func (h *Handler) report(c *gin.Context) {
	respond.JSON(c, http.StatusOK, h.Eval.EvaluateAll())
}

func (h *Handler) single(c *gin.Context) {
	results := h.Eval.EvaluateSingle(c.Param("name"))
	if results == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "fixture not found", nil)
		return
	}
	respond.JSON(c, http.StatusOK, results)
}
