package handlers

import (
	"net/http"
	"strconv"

	response "acme_shop/internal/adapter/http/dto/response"
	"acme_shop/internal/usecase"
	"acme_shop/pkg"

	"github.com/gin-gonic/gin"
)

// CronHandler exposes the keep-alive ping and its execution history.

type CronHandler struct {
	usecase usecase.ICronUseCase
}

func NewCronHandler(uc usecase.ICronUseCase) *CronHandler {
	return &CronHandler{usecase: uc}
}

// Ping godoc
// @Summary      Run the database keep-alive ping
// @Description  The execution is logged whether it succeeds or fails.
// @Tags         cron
// @Produce      json
// @Param        source  query     string  false  "Trigger source"  default(manual)
// @Success      200     {object}  response.CronPingResponse
// @Failure      500     {object}  pkg.HTTPError
// @Router       /cron/ping [get]
func (h *CronHandler) Ping(c *gin.Context) {
	result, err := h.usecase.Ping(c.Request.Context(), c.Query("source"))
	if err != nil {
		appErr := pkg.NewDomainError("PING_FAILED", "Database ping failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCronPing(result))
}

// Logs godoc
// @Summary      List recent keep-alive executions
// @Tags         cron
// @Produce      json
// @Param        limit  query    int  false  "Max entries"  default(50)
// @Success      200    {array}  response.CronLogResponse
// @Security     Bearer
// @Router       /cron/logs [get]
func (h *CronHandler) Logs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.usecase.Logs(c.Request.Context(), limit)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCronLogs(logs))
}
