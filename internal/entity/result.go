package entity

// Result is the outcome of a round as seen after the latest move.
type Result string

const (
	ResultUndetermined Result = "undetermined"
	ResultPlayerAWins  Result = "player_a_wins"
	ResultPlayerBWins  Result = "player_b_wins"
	ResultDraw         Result = "draw"
)

func WinFor(player Player) Result {
	if player == PlayerA {
		return ResultPlayerAWins
	}

	return ResultPlayerBWins
}

func (that Result) IsFinished() bool {
	return that != ResultUndetermined
}

// Message is the line printed when a round ends with this result.
func (that Result) Message() string {
	switch that {
	case ResultPlayerAWins:
		return "Congratulations, Player A, you won!"
	case ResultPlayerBWins:
		return "Congratulations, Player B, you won!"
	case ResultDraw:
		return "Draw!"
	default:
		return ""
	}
}
