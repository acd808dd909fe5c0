package quote

import (
	"context"
	"errors"
	"net/http"
	"time"

	"quote-and-translate/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for quotes.
type Handler struct {
	svc      ServiceInterface
	notifier Notifier // nil when contact notification is not configured
	logger   *zap.Logger
}

// NewHandler creates a new quote handler.
func NewHandler(svc ServiceInterface, notifier Notifier, logger *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		notifier: notifier,
		logger:   logger,
	}
}

// RegisterRoutes mounts the quote routes on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/quote", h.CalculateQuote)
}

// CalculateQuote returns either a computed price or a contact-us decision.
// Both are 200s; only a missing required field is a 400.
func (h *Handler) CalculateQuote(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}

	decision, err := h.svc.Quote(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrLocationRequired) || errors.Is(err, models.ErrHoursRequired) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		h.logger.Error("quote failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to calculate quote"})
	}

	if decision.RouteTo == models.RouteToContact && h.notifier != nil {
		h.notifyContact(req, decision.Message)
	}

	return c.JSON(http.StatusOK, decision)
}

// notifyContact emails the lead to the business without holding up the
// response. A failed send is logged and dropped; the caller already has
// their answer.
func (h *Handler) notifyContact(req models.QuoteRequest, reason string) {
	lead := models.ContactLead{
		LeadID:      uuid.NewString(),
		Location:    req.Location.Bounded(models.MaxLocationLen),
		Hours:       req.Hours.Bounded(models.MaxHoursLen),
		StartTime:   req.StartTime.Bounded(models.MaxStartTimeLen),
		ServiceType: req.ServiceType.Bounded(models.MaxServiceLen),
		Reason:      reason,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.notifier.ContactLead(ctx, lead); err != nil {
			h.logger.Warn("contact lead notification failed",
				zap.String("lead_id", lead.LeadID), zap.Error(err))
		}
	}()
}
