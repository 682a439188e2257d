package savemoney

// Variant is the resolved display variant, after the auto mode has been
// applied.
type Variant string

const (
	Dark  Variant = "dark"
	Light Variant = "light"
)

// inWindow reports whether the HH:MM clock falls inside [start, end).
// A window whose start is later than its end crosses midnight, so the
// default 22:00 to 05:00 window covers both late evening and early
// morning. Zero-padded HH:MM strings compare correctly as text.
func inWindow(clock, start, end string) bool {
	if start <= end {
		return clock >= start && clock < end
	}
	return clock >= start || clock < end
}

// Variant resolves the display variant at the given HH:MM wall-clock
// time. Explicit modes ignore the clock.
func (s Settings) Variant(clock string) Variant {
	switch s.Mode {
	case ModeDark:
		return Dark
	case ModeLight:
		return Light
	default:
		if inWindow(clock, s.DarkStart, s.DarkEnd) {
			return Dark
		}
		return Light
	}
}
