package entity

import (
	"fmt"
	"strings"
)

// SessionStats counts finished rounds for the lifetime of a session.
type SessionStats struct {
	Rounds      int
	Draws       int
	PlayerAWins int
	PlayerBWins int
}

// Record adds a finished round. Undetermined results are ignored.
func (that *SessionStats) Record(result Result) {
	switch result {
	case ResultPlayerAWins:
		that.PlayerAWins++
	case ResultPlayerBWins:
		that.PlayerBWins++
	case ResultDraw:
		that.Draws++
	default:
		return
	}

	that.Rounds++
}

func (that *SessionStats) String() string {
	var sb strings.Builder

	sb.WriteString("Here's your statistics:\n")
	fmt.Fprintf(&sb, "Rounds played: \t%d\n", that.Rounds)
	fmt.Fprintf(&sb, "Draw: \t\t%d\n", that.Draws)
	fmt.Fprintf(&sb, "Win Player A: \t%d\n", that.PlayerAWins)
	fmt.Fprintf(&sb, "Win Player B: \t%d\n", that.PlayerBWins)

	return sb.String()
}
