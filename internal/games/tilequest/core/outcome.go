package core

// OutcomeKind tags the result of one pipeline run.
type OutcomeKind uint8

const (
	OutcomeNoOp OutcomeKind = iota
	OutcomeSelected
	OutcomeDeselected
	OutcomeRejected // Swap or replacement refused; nothing changed
	OutcomeSwapped  // Swap performed, no match
	OutcomeMatchFound
	OutcomeReplaced
	OutcomeQuestLost
	OutcomeGameOver
)

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoOp:
		return "noop"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeRejected:
		return "rejected"
	case OutcomeSwapped:
		return "swapped"
	case OutcomeMatchFound:
		return "match_found"
	case OutcomeReplaced:
		return "replaced"
	case OutcomeQuestLost:
		return "quest_lost"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// FrameOutcome describes what one input did to the level.
type FrameOutcome struct {
	Kind  OutcomeKind
	Cells []Coord // Swapped cells, or matched cells for OutcomeMatchFound

	// Match details
	Color      Color
	Ignored    Color
	HasIgnored bool
	MissMatch  bool
	Attempts   int
	Box        Rect
	Enemy      *EnemyMatches

	LostColors []Color // Quests lost by this input
	Completed  []Color // Quests completed by this input
}

// Stats accumulates per-level counters.
type Stats struct {
	Swaps        int
	Rejected     int
	WrongSwaps   int
	Matches      int
	MissMatches  int
	Replacements int
	EnemyRuns    int
}
