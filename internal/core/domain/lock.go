package domain

// LockMode is the granularity-independent lock strength requested from the
// lock manager.
type LockMode int

const (
	// LockIntentShared declares an intent to read below this level without
	// excluding writers at this level.
	LockIntentShared LockMode = iota
	// LockShared excludes structural and content mutation at this level while
	// permitting other readers.
	LockShared
	// LockExclusive excludes everything. Never taken by the digest subsystem
	// itself; held by DDL and shutdown paths it must serialize against.
	LockExclusive
)

func (m LockMode) String() string {
	switch m {
	case LockIntentShared:
		return "IS"
	case LockShared:
		return "S"
	case LockExclusive:
		return "X"
	default:
		return "unknown"
	}
}
