package display

import (
	"fmt"

	"sports-ticker/internal/config"
	"sports-ticker/internal/domain/games"
)

// Layout builds the ticker's screens for a fixed panel geometry.
type Layout struct {
	store      *LogoStore
	namespaces map[string]string // league name -> logo namespace
	colors     config.Colors
	width      int
	height     int
}

// NewLayout constructs a Layout. namespaces maps the configured league tag to
// its logo folder.
func NewLayout(store *LogoStore, namespaces map[string]string, colors config.Colors, disp config.Display) *Layout {
	return &Layout{
		store:      store,
		namespaces: namespaces,
		colors:     colors,
		width:      disp.Width,
		height:     disp.Height,
	}
}

// GameScreen composes one game: logos in the corners, league label on top,
// score or "VS" in the middle, status line at the bottom.
func (l *Layout) GameScreen(g games.Game) Composition {
	var elems []Element

	ns := l.namespaces[g.League]
	elems = l.appendLogo(elems, ns, g.HomeTeam, Point{X: 4, Y: 4})
	elems = l.appendLogo(elems, ns, g.AwayTeam, Point{X: l.width - 36, Y: 4})

	elems = append(elems, Text{
		Value:  g.League,
		Color:  Color(l.colors.LeagueLabel),
		Anchor: Anchor{X: 0.5, Y: 0},
		Pos:    Point{X: l.width / 2, Y: 2},
	})

	elems = append(elems,
		Text{
			Value:  g.HomeTeam,
			Color:  Color(l.colors.Font),
			Anchor: Anchor{X: 0.5, Y: 0},
			Pos:    Point{X: 20, Y: 38},
		},
		Text{
			Value:  g.AwayTeam,
			Color:  Color(l.colors.Font),
			Anchor: Anchor{X: 0.5, Y: 0},
			Pos:    Point{X: l.width - 20, Y: 38},
		},
	)

	scoreText := "VS"
	scoreColor := Color(l.colors.Font)
	if !g.IsScheduled() {
		scoreText = fmt.Sprintf("%s - %s", g.HomeScore, g.AwayScore)
		if g.IsLive() {
			scoreColor = Color(l.colors.LiveScore)
		}
	}
	elems = append(elems, Text{
		Value:  scoreText,
		Color:  scoreColor,
		Anchor: Anchor{X: 0.5, Y: 0.5},
		Pos:    Point{X: l.width / 2, Y: 24},
	})

	statusColor := Color(l.colors.Font)
	if g.IsLive() {
		statusColor = Color(l.colors.LiveStatus)
	}
	elems = append(elems, Text{
		Value:  g.Status,
		Color:  statusColor,
		Anchor: Anchor{X: 0.5, Y: 1},
		Pos:    Point{X: l.width / 2, Y: l.height - 2},
	})

	return Composition{Elements: elems}
}

// StartupScreen is shown while the first fetch runs.
func (l *Layout) StartupScreen() Composition {
	return Composition{Elements: []Element{
		Text{
			Value:  "SPORTS TICKER",
			Color:  Color(l.colors.LeagueLabel),
			Anchor: Anchor{X: 0.5, Y: 0.5},
			Pos:    Point{X: l.width / 2, Y: 20},
		},
		Text{
			Value:  "Loading...",
			Color:  Color(l.colors.Font),
			Anchor: Anchor{X: 0.5, Y: 0.5},
			Pos:    Point{X: l.width / 2, Y: 40},
		},
	}}
}

// NoGamesScreen is the empty-state screen.
func (l *Layout) NoGamesScreen() Composition {
	return Composition{Elements: []Element{
		Text{
			Value:  "NO GAMES TODAY",
			Color:  Color(l.colors.Font),
			Anchor: Anchor{X: 0.5, Y: 0.5},
			Pos:    Point{X: l.width / 2, Y: l.height / 2},
		},
	}}
}

func (l *Layout) appendLogo(elems []Element, namespace, team string, pos Point) []Element {
	data, ok := l.store.Lookup(namespace, team)
	if !ok {
		// Missing logo: slot stays blank, everything else still renders.
		return elems
	}
	return append(elems, Bitmap{Namespace: namespace, Team: team, Pos: pos, Data: data})
}
