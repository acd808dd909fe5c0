package models

// Per-field caps applied before parsing.
const (
	MaxLocationLen  = 200
	MaxHoursLen     = 20
	MaxStartTimeLen = 30
	MaxServiceLen   = 20
)

// Service products. Anything other than "serenade" prices as standard.
const (
	ServiceStandard = "standard"
	ServiceSerenade = "serenade"
)

// Routing decisions carried in QuoteResponse.RouteTo.
const (
	RouteToQuote   = "quote"
	RouteToContact = "contact"
)

// QuoteRequest is the raw quote form submitted by the chat widget. All fields
// are untrusted free text.
type QuoteRequest struct {
	Location    Field `json:"location"`
	Hours       Field `json:"hours"`
	StartTime   Field `json:"start_time"`
	ServiceType Field `json:"service_type"`
}

// QuoteResponse is the pricing decision for a single request. RouteTo is
// either "quote" with the numeric fields populated, or "contact" with only a
// human-readable message. Serenade quotes omit the hour fields because the
// product is flat-rate.
type QuoteResponse struct {
	RouteTo       string   `json:"routeTo"`
	DistanceMiles *float64 `json:"distanceMiles,omitempty"`
	Rate          *int     `json:"rate,omitempty"`
	MinimumHours  *int     `json:"minimumHours,omitempty"`
	HoursBilled   *int     `json:"hoursBilled,omitempty"`
	Estimate      *int     `json:"estimate,omitempty"`
	Message       string   `json:"message"`
}

// Coordinate is a longitude/latitude pair as returned by the place index.
type Coordinate struct {
	Longitude float64
	Latitude  float64
}

// ContactLead captures a quote request that could not be auto-priced and
// needs human follow-up.
type ContactLead struct {
	LeadID      string
	Location    string
	Hours       string
	StartTime   string
	ServiceType string
	Reason      string
}
