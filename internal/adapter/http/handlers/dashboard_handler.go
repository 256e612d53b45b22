package handlers

import (
	"net/http"

	response "acme_shop/internal/adapter/http/dto/response"
	"acme_shop/internal/usecase"
	"acme_shop/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Stats godoc
// @Summary      Admin dashboard summary
// @Description  Totals over all orders plus month-over-month sales growth.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.DashboardStatsResponse
// @Security     Bearer
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}
