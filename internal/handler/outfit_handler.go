package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wardrobe/internal/service"
)

// OutfitHandler handles the caller's outfits. Response bodies follow the
// configured outfit shape.
type OutfitHandler struct {
	svc service.OutfitService
}

// NewOutfitHandler creates an outfit handler.
func NewOutfitHandler(svc service.OutfitService) *OutfitHandler {
	return &OutfitHandler{svc: svc}
}

// List godoc
// @Summary List outfits
// @Tags outfits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.TaggedOutfit
// @Failure 401 {object} errors.ErrorResponse
// @Router /outfits [get]
func (h *OutfitHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	outfits, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, outfits)
}

// Get godoc
// @Summary Get outfit
// @Tags outfits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Outfit ID"
// @Success 200 {object} model.TaggedOutfit
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /outfits/{id} [get]
func (h *OutfitHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	outfit, err := h.svc.Get(c.Request().Context(), userID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, outfit)
}

// Create godoc
// @Summary Create outfit
// @Tags outfits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.OutfitInput true "Outfit"
// @Success 201 {object} model.TaggedOutfit
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /outfits [post]
func (h *OutfitHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var in service.OutfitInput
	if err := c.Bind(&in); err != nil {
		return badRequest(msgInvalidBody)
	}

	outfit, err := h.svc.Create(c.Request().Context(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, outfit)
}

// Update godoc
// @Summary Update outfit
// @Description Omitted fields keep their stored values; tags and itemNames replace the whole list.
// @Tags outfits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Outfit ID"
// @Param request body service.OutfitInput true "Fields to change"
// @Success 200 {object} model.TaggedOutfit
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /outfits/{id} [put]
func (h *OutfitHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in service.OutfitInput
	if err := c.Bind(&in); err != nil {
		return badRequest(msgInvalidBody)
	}

	outfit, err := h.svc.Update(c.Request().Context(), userID, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, outfit)
}

// Delete godoc
// @Summary Delete outfit
// @Tags outfits
// @Security BearerAuth
// @Param id path int true "Outfit ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /outfits/{id} [delete]
func (h *OutfitHandler) Delete(c echo.Context) error {
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
