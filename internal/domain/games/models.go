package games

// GamePhase mirrors the shared contract for game lifecycle states.
type GamePhase string

const (
	PhaseScheduled GamePhase = "SCHEDULED"
	PhaseLive      GamePhase = "LIVE"
	PhaseFinal     GamePhase = "FINAL"
	PhasePostponed GamePhase = "POSTPONED"
	PhaseCanceled  GamePhase = "CANCELED"
	PhaseOther     GamePhase = "OTHER"
)

// Game is the canonical game shape produced by the normalizer. It is a value
// record: once constructed it is never mutated.
type Game struct {
	League    string    `json:"league"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	HomeScore string    `json:"homeScore"`
	AwayScore string    `json:"awayScore"`
	Status    string    `json:"status"`
	Phase     GamePhase `json:"phase"`
}

// IsLive reports whether the game clock is running.
func (g Game) IsLive() bool { return g.Phase == PhaseLive }

// IsScheduled reports whether the game has not started yet.
func (g Game) IsScheduled() bool { return g.Phase == PhaseScheduled }

// GameList is the ordered result of one pipeline run. A list is replaced as
// a unit by the next successful run and never mutated in place.
type GameList []Game
