package quote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quote-and-translate/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubService struct {
	decision *models.QuoteResponse
	err      error
}

func (s *stubService) Quote(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error) {
	return s.decision, s.err
}

type recordingNotifier struct {
	leads chan models.ContactLead
}

func (n *recordingNotifier) ContactLead(ctx context.Context, lead models.ContactLead) error {
	n.leads <- lead
	return nil
}

func postQuote(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.CalculateQuote(e.NewContext(req, rec)))
	return rec
}

func TestCalculateQuoteMissingLocationIs400(t *testing.T) {
	h := NewHandler(&stubService{err: models.ErrLocationRequired}, nil, zap.NewNop())

	rec := postQuote(t, h, `{"hours": "2"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "location is required", body.Message)
}

func TestCalculateQuoteContactDecisionIs200(t *testing.T) {
	decision := &models.QuoteResponse{
		RouteTo: models.RouteToContact,
		Message: "Unable to calculate distance for this location. Please contact us for a custom quote.",
	}
	h := NewHandler(&stubService{decision: decision}, nil, zap.NewNop())

	rec := postQuote(t, h, `{"location": "georgetown, tx", "hours": "2"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body models.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.RouteToContact, body.RouteTo)
}

func TestCalculateQuoteNotifiesOnContactRoute(t *testing.T) {
	decision := &models.QuoteResponse{
		RouteTo: models.RouteToContact,
		Message: "This location is outside the auto-quote range. Please contact us for a custom quote.",
	}
	notifier := &recordingNotifier{leads: make(chan models.ContactLead, 1)}
	h := NewHandler(&stubService{decision: decision}, notifier, zap.NewNop())

	rec := postQuote(t, h, `{"location": "el paso, tx", "hours": "2", "service_type": "standard"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case lead := <-notifier.leads:
		assert.Equal(t, "el paso, tx", lead.Location)
		assert.Equal(t, decision.Message, lead.Reason)
		assert.NotEmpty(t, lead.LeadID)
	case <-time.After(time.Second):
		t.Fatal("expected a contact lead notification")
	}
}

func TestCalculateQuoteDoesNotNotifyOnQuote(t *testing.T) {
	rate := 350
	decision := &models.QuoteResponse{RouteTo: models.RouteToQuote, Rate: &rate}
	notifier := &recordingNotifier{leads: make(chan models.ContactLead, 1)}
	h := NewHandler(&stubService{decision: decision}, notifier, zap.NewNop())

	postQuote(t, h, `{"location": "georgetown, tx", "hours": "2"}`)

	select {
	case <-notifier.leads:
		t.Fatal("priced quotes must not generate contact leads")
	case <-time.After(50 * time.Millisecond):
	}
}
