package domain

// The catch-all zone is stored under one description but shown to the
// frontend under a shorter sentinel.
const (
	ZoneAllStored  = "TODAS LAS ZONAS"
	ZoneAllDisplay = "TODAS"
)

// ZoneDisplayName rewrites the stored catch-all description to its frontend
// sentinel. Nil stays nil (a user or survey without a resolved zone).
func ZoneDisplayName(stored *string) *string {
	if stored != nil && *stored == ZoneAllStored {
		display := ZoneAllDisplay
		return &display
	}
	return stored
}

// ZoneStoredName rewrites the frontend sentinel back to the description the
// zonas table actually holds, leaving every other value untouched.
func ZoneStoredName(display string) string {
	if display == ZoneAllDisplay {
		return ZoneAllStored
	}
	return display
}
