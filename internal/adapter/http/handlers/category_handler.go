package handlers

import (
	"errors"
	"net/http"

	request "acme_shop/internal/adapter/http/dto/request"
	response "acme_shop/internal/adapter/http/dto/response"
	"acme_shop/internal/usecase"
	"acme_shop/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCategoryPayload = pkg.NewDomainErrorSimple("INVALID_CATEGORY_INPUT", "Invalid category payload", http.StatusBadRequest)
)

type CategoryHandler struct {
	usecase usecase.ICategoryUseCase
}

func NewCategoryHandler(uc usecase.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{usecase: uc}
}

// Create godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CategoryRequest  true  "Category"
// @Success      201      {object}  response.CategoryResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCategoryPayload.HTTPStatus, errInvalidCategoryPayload.ToHTTPError())
		return
	}

	category, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCategory(category))
}

// List godoc
// @Summary      List categories ordered by priority
// @Tags         categories
// @Produce      json
// @Success      200  {array}  response.CategoryResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategories(categories))
}

// GetByID godoc
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  response.CategoryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *gin.Context) {
	category, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategory(category))
}

// Update godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Category ID"
// @Param        payload  body      request.CategoryRequest  true  "Category"
// @Success      200      {object}  response.CategoryResponse
// @Failure      404      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCategoryPayload.HTTPStatus, errInvalidCategoryPayload.ToHTTPError())
		return
	}

	category := payload.ToEntity()
	category.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), category)
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategory(updated))
}

// Delete godoc
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "Category ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCategoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCategoryInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
