package handlers

import (
	"net/http"

	response "acme_shop/internal/adapter/http/dto/response"
	"acme_shop/internal/usecase"
	"acme_shop/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the storefront's read-only product views.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListGrouped godoc
// @Summary      List products grouped by category
// @Description  Groups are ordered by category priority; products whose
// @Description  category was deleted appear under "Uncategorized".
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  response.CatalogSectionResponse
// @Router       /products [get]
func (h *CatalogHandler) ListGrouped(c *gin.Context) {
	groups, err := h.usecase.ListGrouped(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalog(groups))
}
