package host

import "fmt"

// Selected identifies the active simulation.
type Selected uint8

const (
	// None shows the menu.
	None Selected = iota
	Automaton
	BounceDemo
	PaddleGame
	Minesweeper
)

// Selectable lists the menu entries in display order.
var Selectable = []Selected{Automaton, BounceDemo, PaddleGame, Minesweeper}

// Key returns the registry name of the simulation, empty for None and for
// values outside the variant.
func (s Selected) Key() string {
	switch s {
	case Automaton:
		return "life"
	case BounceDemo:
		return "bounce"
	case PaddleGame:
		return "paddle"
	case Minesweeper:
		return "minesweeper"
	default:
		return ""
	}
}

// Label is the menu text for s.
func (s Selected) Label() string {
	switch s {
	case None:
		return "Menu"
	case Automaton:
		return "Game of Life"
	case BounceDemo:
		return "DvD bouncy"
	case PaddleGame:
		return "Pong"
	case Minesweeper:
		return "Minesweeper"
	default:
		return fmt.Sprintf("Selected(%d)", uint8(s))
	}
}

func (s Selected) String() string { return s.Label() }

// ParseSelected maps a registry name to its variant.
func ParseSelected(name string) (Selected, bool) {
	if name == "" || name == "menu" {
		return None, true
	}
	for _, s := range Selectable {
		if s.Key() == name {
			return s, true
		}
	}
	return None, false
}

// GameState is the overlay applied on top of the active simulation.
type GameState uint8

const (
	Running GameState = iota
	Paused
	Help
)

func (g GameState) String() string {
	switch g {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Help:
		return "help"
	default:
		return fmt.Sprintf("GameState(%d)", uint8(g))
	}
}
