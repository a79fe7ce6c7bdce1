package domain

import "strconv"

// Timestamp is a logical commit timestamp assigned by the storage engine.
// Zero is never a valid commit time; it marks "unset".
type Timestamp uint64

// IsZero reports whether the timestamp is unset.
func (t Timestamp) IsZero() bool {
	return t == 0
}

// String renders the timestamp as a decimal string for error messages and logs.
func (t Timestamp) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// PrepareConflictBehavior controls how a snapshot read treats documents touched
// by a prepared but not yet committed transaction.
type PrepareConflictBehavior int

const (
	// PrepareIgnore skips prepared writes entirely. This is the default: a
	// digest run must not block behind in-flight transactions.
	PrepareIgnore PrepareConflictBehavior = iota
	// PrepareEnforce surfaces prepared writes as conflicts. Required for
	// point-in-time reads, where skipping a prepare active at the chosen
	// instant would make the result timestamp-dependent in the wrong way.
	PrepareEnforce
)

func (b PrepareConflictBehavior) String() string {
	switch b {
	case PrepareEnforce:
		return "enforce"
	default:
		return "ignore"
	}
}
