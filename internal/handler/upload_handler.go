package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wardrobe/internal/errors"
	"wardrobe/internal/storage"
)

// UploadHandler accepts image uploads.
type UploadHandler struct {
	storer storage.Storer
}

// NewUploadHandler creates an upload handler.
func NewUploadHandler(storer storage.Storer) *UploadHandler {
	return &UploadHandler{storer: storer}
}

// UploadResponse carries the public URL of a stored image.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Upload godoc
// @Summary Upload an image
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file (max 5 MB)"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	// A missing field and a non-multipart body are the same client mistake.
	header, err := c.FormFile("image")
	if err != nil {
		return badRequest("No file uploaded.")
	}

	src, err := header.Open()
	if err != nil {
		return respondError(c, errors.IO("Failed to read upload", err))
	}
	defer src.Close()

	url, err := h.storer.Store(c.Request().Context(), storage.File{
		Reader:       src,
		Size:         header.Size,
		OriginalName: header.Filename,
		MimeType:     header.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, UploadResponse{ImageURL: url})
}
