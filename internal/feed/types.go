package feed

// Upstream status codes seen in scoreboard responses.
const (
	statusFinal      = "STATUS_FINAL"
	statusInProgress = "STATUS_IN_PROGRESS"
	statusScheduled  = "STATUS_SCHEDULED"
	statusPostponed  = "STATUS_POSTPONED"
	statusCanceled   = "STATUS_CANCELED"
)

type scoreboardResponse struct {
	Events []Event `json:"events"`
}

// Event is one raw upstream event record, pre-normalization.
type Event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Competitions []Competition `json:"competitions"`
	Status       EventStatus   `json:"status"`
}

// Competition carries the competitor pairing for one event.
type Competition struct {
	Competitors []Competitor `json:"competitors"`
}

// Competitor is one side of a competition; the first listed is home.
type Competitor struct {
	Team  TeamInfo `json:"team"`
	Score string   `json:"score"`
}

// TeamInfo carries the upstream team identity.
type TeamInfo struct {
	Abbreviation string `json:"abbreviation"`
}

// EventStatus wraps the upstream status block.
type EventStatus struct {
	Type StatusType `json:"type"`
}

// StatusType is the enumerated status code plus its free-text detail.
type StatusType struct {
	Name        string `json:"name"`
	ShortDetail string `json:"shortDetail"`
}
