package probe

import "mediapeek/internal/fetch"

// State identifies one step of the probe escalation machine.
type State int

const (
	StateResolveRange State = iota
	StateTryHeader
	StateTryTail
	StateTryConcat
	StateDone
)

func (s State) String() string {
	switch s {
	case StateResolveRange:
		return "resolve_range"
	case StateTryHeader:
		return "try_header"
	case StateTryTail:
		return "try_tail"
	case StateTryConcat:
		return "try_concat"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Strategy names the window strategy that produced a report.
type Strategy string

const (
	StrategyHeader Strategy = "header"
	StrategyTail   Strategy = "tail"
	StrategyConcat Strategy = "concat"
	StrategyFull   Strategy = "full"
	StrategyLocal  Strategy = "local"
)

// Attempt captures what one strategy attempt produced: whether any window
// bytes landed on disk and whether the classifier accepted the report.
type Attempt struct {
	WroteBytes bool
	Sufficient bool
}

// Advance returns the state that follows the given one. It is pure: all
// fetch and tool side effects happen elsewhere, which keeps the
// escalation policy testable on its own.
//
// Escalating requires the current strategy to have produced a non-empty
// window that the classifier rejected. Tail probing, and with it
// concatenation, additionally requires a known content length and range
// support from the origin; without those the header result is final.
func Advance(state State, attempt Attempt, info fetch.RangeInfo) State {
	switch state {
	case StateResolveRange:
		return StateTryHeader
	case StateTryHeader:
		if attempt.Sufficient || !attempt.WroteBytes {
			return StateDone
		}
		if !info.SizeKnown() || !info.AcceptsRanges {
			return StateDone
		}
		return StateTryTail
	case StateTryTail:
		if attempt.Sufficient || !attempt.WroteBytes {
			return StateDone
		}
		return StateTryConcat
	default:
		return StateDone
	}
}
