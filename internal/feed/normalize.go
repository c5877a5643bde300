package feed

import (
	"errors"
	"fmt"

	"sports-ticker/internal/config"
	"sports-ticker/internal/domain/games"
	"sports-ticker/internal/timeutil"
)

// Rejection reasons surfaced by Normalize. The pipeline skips the offending
// event and keeps going; these are never fatal.
var (
	ErrNoCompetition       = errors.New("event has no competitions")
	ErrCompetitorCount     = errors.New("event does not have exactly two competitors")
	ErrMissingAbbreviation = errors.New("competitor is missing a team abbreviation")
)

// Normalize converts one raw upstream event into a Game, or rejects it.
// Pure: no I/O, no shared state. The first-listed competitor is the home
// team by upstream convention.
func Normalize(ev Event, league config.League, tzOffsetHours int) (games.Game, error) {
	if len(ev.Competitions) == 0 {
		return games.Game{}, ErrNoCompetition
	}
	competitors := ev.Competitions[0].Competitors
	if len(competitors) != 2 {
		return games.Game{}, fmt.Errorf("%w: got %d", ErrCompetitorCount, len(competitors))
	}

	home, away := competitors[0], competitors[1]
	if home.Team.Abbreviation == "" || away.Team.Abbreviation == "" {
		return games.Game{}, ErrMissingAbbreviation
	}

	statusName := ev.Status.Type.Name
	if statusName == "" {
		statusName = statusScheduled
	}

	return games.Game{
		League:    league.Name,
		HomeTeam:  home.Team.Abbreviation,
		AwayTeam:  away.Team.Abbreviation,
		HomeScore: scoreOrZero(home.Score),
		AwayScore: scoreOrZero(away.Score),
		Status:    statusText(statusName, ev.Status.Type.ShortDetail, ev.Date, tzOffsetHours),
		Phase:     mapPhase(statusName),
	}, nil
}

// statusText derives the human-readable status line shown under the score.
func statusText(statusName, shortDetail, date string, tzOffsetHours int) string {
	switch statusName {
	case statusFinal:
		return "FINAL"
	case statusInProgress:
		// e.g. "Q3 5:42" or "2nd 12:30", passed through verbatim.
		return shortDetail
	case statusScheduled:
		return timeutil.KickoffLabel(date, tzOffsetHours)
	case statusPostponed:
		return "POSTPONED"
	case statusCanceled:
		return "CANCELED"
	default:
		if shortDetail != "" {
			return shortDetail
		}
		return "SCHEDULED"
	}
}

func mapPhase(statusName string) games.GamePhase {
	switch statusName {
	case statusFinal:
		return games.PhaseFinal
	case statusInProgress:
		return games.PhaseLive
	case statusScheduled:
		return games.PhaseScheduled
	case statusPostponed:
		return games.PhasePostponed
	case statusCanceled:
		return games.PhaseCanceled
	default:
		return games.PhaseOther
	}
}

// scoreOrZero preserves upstream score formatting; the field is absent before
// a game starts.
func scoreOrZero(score string) string {
	if score == "" {
		return "0"
	}
	return score
}
