package quote

import (
	"context"
	"math"
	"strings"

	"quote-and-translate/internal/config"
	"quote-and-translate/internal/models"

	"go.uber.org/zap"
)

// Geocoder resolves free-form place text to the top coordinate match, or nil
// when the index has no match.
type Geocoder interface {
	SearchPlace(ctx context.Context, indexName, text string) (*models.Coordinate, error)
}

// Router calculates a driving route and returns its length in kilometers, or
// nil when no route could be found.
type Router interface {
	CalculateRoute(ctx context.Context, calculatorName string, origin, dest models.Coordinate) (*float64, error)
}

// Notifier forwards contact-routed requests to the business, best effort.
type Notifier interface {
	ContactLead(ctx context.Context, lead models.ContactLead) error
}

// Settings carries the deployment knobs for quoting. Distance resolution is
// disabled until PlaceIndex, RouteCalculator and OriginAddress are all set to
// real values; a disabled resolver routes every quote to contact.
type Settings struct {
	PlaceIndex      string
	RouteCalculator string
	OriginAddress   string
	WindowStartHour int
	WindowEndHour   int
}

// ServiceInterface defines the quote module's business surface.
type ServiceInterface interface {
	Quote(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error)
}

type service struct {
	geocoder Geocoder
	router   Router
	settings Settings
	logger   *zap.Logger
}

// NewService wires the distance collaborators into the quote engine.
func NewService(geocoder Geocoder, router Router, settings Settings, logger *zap.Logger) ServiceInterface {
	return &service{
		geocoder: geocoder,
		router:   router,
		settings: settings,
		logger:   logger,
	}
}

// Quote turns a raw request into a pricing decision.
//  1. Bound every field before anything parses it.
//  2. Missing location and missing hours (standard only) are the caller's
//     problem and surface as validation errors.
//  3. Everything else, including a dead geocoder, resolves to a decision.
func (s *service) Quote(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error) {
	locationText := req.Location.Bounded(models.MaxLocationLen)
	hoursRaw := req.Hours.Bounded(models.MaxHoursLen)
	startTime := req.StartTime.Bounded(models.MaxStartTimeLen)
	serviceType := strings.ToLower(req.ServiceType.Bounded(models.MaxServiceLen))

	if locationText == "" {
		return nil, models.ErrLocationRequired
	}

	var hoursRequested float64
	if serviceType == models.ServiceSerenade {
		// Serenade is flat-rate; whatever the caller typed for hours is
		// irrelevant.
		hoursRequested = 1
	} else {
		parsed := parseHours(hoursRaw)
		if parsed == nil {
			return nil, models.ErrHoursRequired
		}
		hoursRequested = *parsed
	}

	distance := s.distanceMiles(ctx, locationText)
	return s.buildQuote(distance, hoursRequested, startTime, serviceType), nil
}

// distanceMiles resolves driving distance from the configured base address to
// the destination text. Resolution is all-or-nothing: any failed step yields
// nil and the request routes to a human, never an error to the caller. The
// destination geocode is retried once with normalized text when the first
// pass comes up empty.
func (s *service) distanceMiles(ctx context.Context, destination string) *float64 {
	if s.settings.PlaceIndex == "" || s.settings.RouteCalculator == "" ||
		s.settings.OriginAddress == "" || s.settings.OriginAddress == config.DefaultOriginAddress {
		return nil
	}

	origin, err := s.geocoder.SearchPlace(ctx, s.settings.PlaceIndex, s.settings.OriginAddress)
	if err != nil {
		s.logger.Warn("origin geocode failed", zap.Error(err))
		return nil
	}

	dest, err := s.geocoder.SearchPlace(ctx, s.settings.PlaceIndex, destination)
	if err != nil {
		s.logger.Warn("destination geocode failed", zap.Error(err))
		return nil
	}

	if origin == nil || dest == nil {
		if normalized := normalizeDestination(destination); normalized != "" {
			dest, err = s.geocoder.SearchPlace(ctx, s.settings.PlaceIndex, normalized)
			if err != nil {
				s.logger.Warn("destination geocode retry failed", zap.Error(err))
				return nil
			}
		} else {
			dest = nil
		}
	}
	if origin == nil || dest == nil {
		return nil
	}

	km, err := s.router.CalculateRoute(ctx, s.settings.RouteCalculator, *origin, *dest)
	if err != nil {
		s.logger.Warn("route calculation failed", zap.Error(err))
		return nil
	}
	if km == nil {
		return nil
	}

	miles := *km * kmToMiles
	return &miles
}

// buildQuote applies the pricing policy in order: unresolvable distance,
// serenade range, auto-quote range, tier match, service window, then the
// billed-hours arithmetic. Rounding of the distance happens only here, for
// display; all comparisons use the raw value.
func (s *service) buildQuote(distanceMiles *float64, hoursRequested float64, startTime, serviceType string) *models.QuoteResponse {
	if distanceMiles == nil {
		return contactResponse("Unable to calculate distance for this location. Please contact us for a custom quote.")
	}

	if serviceType == models.ServiceSerenade {
		if *distanceMiles > SerenadeMaxMiles {
			return contactResponse("Serenade pricing applies only within 25 miles. Please contact us for a custom quote.")
		}
		rate := SerenadeFlatRate
		estimate := SerenadeFlatRate
		return &models.QuoteResponse{
			RouteTo:       models.RouteToQuote,
			DistanceMiles: roundMiles(*distanceMiles),
			Rate:          &rate,
			Estimate:      &estimate,
			Message:       "Serenade flat rate quote. Availability is confirmed by email.",
		}
	}

	if *distanceMiles > MaxAutoQuoteMiles {
		return contactResponse("This location is outside the auto-quote range. Please contact us for a custom quote.")
	}

	tier := matchTier(*distanceMiles)
	if tier == nil {
		return contactResponse("No pricing tier matched this distance. Please contact us for a custom quote.")
	}

	// The window check only runs when the caller actually supplied a start
	// time. A supplied time that does not parse fails the check rather than
	// being ignored.
	if startTime != "" {
		parsedStart := parseStartTime(startTime)
		if parsedStart == nil || !parsedStart.WithinWindow(s.settings.WindowStartHour, s.settings.WindowEndHour) {
			return contactResponse("Events outside 1pm-10pm require a custom quote.")
		}
	}

	hours := math.Max(hoursRequested, float64(tier.MinHours))
	billedHours := int(math.Ceil(hours))
	estimate := billedHours * tier.Rate
	minimumHours := tier.MinHours
	rate := tier.Rate

	var notes []string
	if float64(billedHours) > hoursRequested {
		notes = append(notes, "Partial hours are rounded up.")
	}
	if hoursRequested < float64(minimumHours) {
		notes = append(notes, "Your estimate reflects the minimum booking time.")
	}
	notes = append(notes, "Estimate only. Availability is confirmed by email.")

	return &models.QuoteResponse{
		RouteTo:       models.RouteToQuote,
		DistanceMiles: roundMiles(*distanceMiles),
		Rate:          &rate,
		MinimumHours:  &minimumHours,
		HoursBilled:   &billedHours,
		Estimate:      &estimate,
		Message:       strings.Join(notes, " "),
	}
}

func contactResponse(message string) *models.QuoteResponse {
	return &models.QuoteResponse{
		RouteTo: models.RouteToContact,
		Message: message,
	}
}

func roundMiles(miles float64) *float64 {
	rounded := math.Round(miles*10) / 10
	return &rounded
}
