package model

// HoursRow is one raw row as delivered by a remote hours endpoint, keyed by
// sheet column name. Values arrive verbatim and may be strings, numbers or
// absent entirely.
type HoursRow map[string]interface{}

// HoursRecord is a normalized time-tracking row for one person on one day.
type HoursRecord struct {
	Date       string  `json:"date"`
	Events     string  `json:"events"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	TotalHours float64 `json:"total_hours"`
	NetHours   float64 `json:"net_hours"`
	Status     string  `json:"status"`
	LastUpdate string  `json:"last_update"`
}

// DateRange bounds an aggregation run. From and To are inclusive ISO dates.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PersonAggregate holds derived totals for one person over a date range.
// Error is set when that person's source failed; totals then default to zero
// and the person still appears in the ranking.
type PersonAggregate struct {
	PersonID     string  `json:"person_id"`
	Label        string  `json:"label"`
	TotalHours   float64 `json:"total_hours"`
	DaysOff      int     `json:"days_off"`
	DaysWorked   int     `json:"days_worked"`
	Unclassified int     `json:"unclassified"`
	Error        string  `json:"error,omitempty"`
}

// TeamAggregate is the ranked team view for one aggregation run. Rows always
// cover the full configured roster, ordered by descending total hours.
// Failures lists the person IDs whose source failed during the run.
type TeamAggregate struct {
	Range    DateRange         `json:"range"`
	Rows     []PersonAggregate `json:"rows"`
	Failures []string          `json:"failures,omitempty"`
}
