package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wardrobe/internal/service"
)

// ClothingHandler handles the caller's clothing items.
type ClothingHandler struct {
	svc service.ClothingService
}

// NewClothingHandler creates a clothing handler.
func NewClothingHandler(svc service.ClothingService) *ClothingHandler {
	return &ClothingHandler{svc: svc}
}

// List godoc
// @Summary List clothing items
// @Description Newest first, each with its category.
// @Tags clothing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ClothingItem
// @Failure 401 {object} errors.ErrorResponse
// @Router /clothing [get]
func (h *ClothingHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Create clothing item
// @Tags clothing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ClothingInput true "Clothing item"
// @Success 201 {object} model.ClothingItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /clothing [post]
func (h *ClothingHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var in service.ClothingInput
	if err := c.Bind(&in); err != nil {
		return badRequest(msgInvalidBody)
	}

	item, err := h.svc.Create(c.Request().Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary Update clothing item
// @Description Only supplied fields are changed.
// @Tags clothing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clothing item ID"
// @Param request body service.ClothingInput true "Fields to change"
// @Success 200 {object} model.ClothingItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clothing/{id} [put]
func (h *ClothingHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in service.ClothingInput
	if err := c.Bind(&in); err != nil {
		return badRequest(msgInvalidBody)
	}

	item, err := h.svc.Update(c.Request().Context(), userID, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete clothing item
// @Tags clothing
// @Security BearerAuth
// @Param id path int true "Clothing item ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clothing/{id} [delete]
func (h *ClothingHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), userID, id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
