package timekeeper

import "fmt"

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Ratio returns timeLeft/total clamped to [0,1].
func Ratio(timeLeft, total int) float64 {
	if total <= 0 {
		return 0
	}
	ratio := float64(timeLeft) / float64(total)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
