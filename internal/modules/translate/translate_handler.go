package translate

import (
	"errors"
	"net/http"

	"quote-and-translate/internal/models"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for translations.
type Handler struct {
	svc ServiceInterface
}

// NewHandler creates a new translate handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the translate routes on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
}

func (h *Handler) Translate(c echo.Context) error {
	var req models.TranslateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}

	result, err := h.svc.Translate(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrTextRequired) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to translate text"})
	}

	return c.JSON(http.StatusOK, result)
}
