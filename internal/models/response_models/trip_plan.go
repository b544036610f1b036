package response_models

// CostBreakdown holds the four budget components. Amounts keep full
// precision; rounding happens only when the plan is rendered.
type CostBreakdown struct {
	Transportation float64 `json:"transportation"`
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	Total          float64 `json:"total"`
}

type DayPlan struct {
	Day       int    `json:"day"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

type TripPlan struct {
	Destination    string        `json:"destination"`
	Days           int           `json:"days"`
	Budget         float64       `json:"budget"`
	Weather        string        `json:"weather"`
	Transportation string        `json:"transportation"`
	Costs          CostBreakdown `json:"costs"`
	Itinerary      []DayPlan     `json:"itinerary"`
	Hotels         []string      `json:"hotels"`
	Restaurants    []string      `json:"restaurants"`

	// Narrative is set instead of the structured fields when the plan
	// came from the language-model fallback.
	Narrative string `json:"narrative,omitempty"`
}
