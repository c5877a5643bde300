// Package rotation tracks which game the single display slot shows next.
package rotation

import "sports-ticker/internal/domain/games"

// Controller holds the current game list and an index into it. It has value
// semantics: Install and Next return the updated controller, so state flows
// through the scheduling step by parameter and return, never ambiently.
type Controller struct {
	list  games.GameList
	index int
}

// Install replaces the list as a unit and resets the index to zero. It is
// called exactly when a refresh succeeds; identical contents still reset
// (no diffing).
func (c Controller) Install(list games.GameList) Controller {
	return Controller{list: list, index: 0}
}

// Next returns the game at the current index and the controller advanced by
// one, modulo list length. On an empty list it reports ok=false and leaves
// the index untouched.
func (c Controller) Next() (games.Game, Controller, bool) {
	if len(c.list) == 0 {
		return games.Game{}, c, false
	}
	game := c.list[c.index]
	c.index = (c.index + 1) % len(c.list)
	return game, c, true
}

// Len returns the current list length.
func (c Controller) Len() int { return len(c.list) }

// Index returns the current rotation index.
func (c Controller) Index() int { return c.index }
