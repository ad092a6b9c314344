package game

// Outcome is the terminal state of a run.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// OutcomeReason records how and when a run ended.
type OutcomeReason struct {
	Outcome   Outcome
	Tick      int
	Cause     string    // "reached_home" or "caught_by_enemy"
	EnemyKind EnemyKind // meaningful only for losses
}
