package core

// Allowance is a count with an optional time interval in seconds.
type Allowance struct {
	Count    int     `yaml:"count"`
	Interval float64 `yaml:"interval,omitempty"`
}

// Quest is the fixed per-level target for one tile color.
type Quest struct {
	Color               Color
	MatchesRequired     Allowance
	SwapsAllowed        Allowance
	ReplacementsAllowed Allowance
	MissMatchesAllowed  Allowance
}

// QuestState is the running progress of a Quest during play.
// Lost is permanent for the rest of the level.
type QuestState struct {
	Color        Color
	Matches      int
	WrongSwaps   int
	Replacements int
	MissMatches  int
	Lost         bool
	Complete     bool
}

// Active reports whether the quest is still in play.
func (s *QuestState) Active() bool {
	return !s.Lost && !s.Complete
}

// RecordWrongSwap counts a swap that produced no match.
// Returns true if this swap lost the quest.
func (s *QuestState) RecordWrongSwap(q Quest) bool {
	if !s.Active() {
		return false
	}
	s.WrongSwaps++
	return s.checkExceeded(s.WrongSwaps, q.SwapsAllowed)
}

// RecordMissMatch counts a match that landed on another color.
// Returns true if this miss-match lost the quest.
func (s *QuestState) RecordMissMatch(q Quest) bool {
	if !s.Active() {
		return false
	}
	s.MissMatches++
	return s.checkExceeded(s.MissMatches, q.MissMatchesAllowed)
}

// RecordReplacement counts a tile replacement.
// Returns true if this replacement lost the quest.
func (s *QuestState) RecordReplacement(q Quest) bool {
	if !s.Active() {
		return false
	}
	s.Replacements++
	return s.checkExceeded(s.Replacements, q.ReplacementsAllowed)
}

// RecordMatch counts a successful match and resets the wrong-swap counter.
// Returns true if this match completed the quest.
func (s *QuestState) RecordMatch(q Quest) bool {
	if !s.Active() {
		return false
	}
	s.Matches++
	s.WrongSwaps = 0
	if s.Matches >= q.MatchesRequired.Count {
		s.Complete = true
		return true
	}
	return false
}

// checkExceeded marks the quest lost once value goes past the allowance.
// The allowance is the number of tolerated mistakes.
func (s *QuestState) checkExceeded(value int, allowed Allowance) bool {
	if value > allowed.Count {
		s.Lost = true
		return true
	}
	return false
}

// QuestRules derives quests from a level's post-fill histogram.
type QuestRules struct {
	SwapsAllowed        Allowance
	ReplacementsAllowed Allowance
	MissMatchesAllowed  Allowance
	MatchInterval       float64 // Carried into MatchesRequired.Interval
	TilesPerMatch       int     // Tiles of a color per required match
}

// BuildQuests creates one Quest and one QuestState per color present in hist.
func BuildQuests(hist Histogram, rules QuestRules) ([]Quest, []QuestState) {
	per := rules.TilesPerMatch
	if per < 1 {
		per = MaxTilesPerMatch
	}

	var quests []Quest
	var states []QuestState
	for c, n := range hist {
		if n == 0 {
			continue
		}
		required := n / per
		if required < 1 {
			required = 1
		}
		color := Color(c)
		quests = append(quests, Quest{
			Color:               color,
			MatchesRequired:     Allowance{Count: required, Interval: rules.MatchInterval},
			SwapsAllowed:        rules.SwapsAllowed,
			ReplacementsAllowed: rules.ReplacementsAllowed,
			MissMatchesAllowed:  rules.MissMatchesAllowed,
		})
		states = append(states, QuestState{Color: color})
	}
	return quests, states
}
