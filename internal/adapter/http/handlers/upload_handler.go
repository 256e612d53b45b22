package handlers

import (
	"io"
	"net/http"

	response "acme_shop/internal/adapter/http/dto/response"
	"acme_shop/internal/usecase/interfaces"
	"acme_shop/pkg"

	"github.com/gin-gonic/gin"
)

// 5 MiB, matching the dashboard's client-side limit.
const maxUploadBytes = 5 << 20

var (
	errInvalidUpload   = pkg.NewDomainErrorSimple("INVALID_UPLOAD", "A file is required under the \"file\" form field", http.StatusBadRequest)
	errUploadTooLarge  = pkg.NewDomainErrorSimple("UPLOAD_TOO_LARGE", "File exceeds the 5MB limit", http.StatusRequestEntityTooLarge)
	errStorageDisabled = pkg.NewDomainErrorSimple("STORAGE_NOT_CONFIGURED", "File storage is not configured", http.StatusServiceUnavailable)
)

// UploadHandler accepts multipart product-image uploads and stores them in
// object storage.

type UploadHandler struct {
	storage interfaces.IFileStorage
}

func NewUploadHandler(storage interfaces.IFileStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload godoc
// @Summary      Upload a product image
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      201   {object}  response.UploadResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      413   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		c.JSON(errStorageDisabled.HTTPStatus, errStorageDisabled.ToHTTPError())
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidUpload.HTTPStatus, errInvalidUpload.ToHTTPError())
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(errUploadTooLarge.HTTPStatus, errUploadTooLarge.ToHTTPError())
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(errInvalidUpload.HTTPStatus, errInvalidUpload.ToHTTPError())
		return
	}
	defer f.Close()

	body, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_READ_FAILED", "Could not read uploaded file", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	url, err := h.storage.Upload(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), body)
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_FAILED", "Could not store uploaded file", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.UploadResponse{URL: url})
}
