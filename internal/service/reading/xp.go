package reading

// XPForSession returns the experience earned for a session. Long sessions
// earn a multiplier; 60 minutes is checked before 30.
func XPForSession(pagesRead, durationMinutes int) int {
	base := pagesRead * 2
	switch {
	case durationMinutes >= 60:
		return base * 2
	case durationMinutes >= 30:
		return base * 3 / 2
	default:
		return base
	}
}
