package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card"
)

type Status int

const (
	StatusAwaitingDecision Status = iota
	StatusAwaitingColorChoice
	StatusTurnComplete
	StatusGameOver
	StatusQuit
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusAwaitingDecision:
		return "awaiting decision"
	case StatusAwaitingColorChoice:
		return "awaiting color choice"
	case StatusTurnComplete:
		return "turn complete"
	case StatusGameOver:
		return "game over"
	case StatusQuit:
		return "quit"
	case StatusAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further turn can be played.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusQuit || s == StatusAborted
}

// State is what the active player is allowed to see.
type State struct {
	PlayerID          int
	LastPlayedCard    card.Card
	CurrentPlayerHand []card.Card
	PlayableIndexes   []int
	PlayerSequence    []int
	PlayerHandCounts  map[int]int
	DeckSize          int
	Direction         Direction
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for _, playerID := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("Player %d (%d card(s))", playerID, s.PlayerHandCounts[playerID])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", s.Direction, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Cards in deck: %d", s.DeckSize))

	return strings.Join(lines, "\n")
}
