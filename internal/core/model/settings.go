package model

import (
	"strconv"
	"time"
)

const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
	DefaultIntervals    = 4

	// MaxMinutes bounds every parsed field so durations stay well inside time.Duration.
	MaxMinutes = 10000
)

// Settings contains the parsed timer preferences.
type Settings struct {
	FocusMinutes int
	BreakMinutes int
	Intervals    int
}

// DefaultSettings returns the settings used when nothing was entered.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes: DefaultFocusMinutes,
		BreakMinutes: DefaultBreakMinutes,
		Intervals:    DefaultIntervals,
	}
}

// FocusDuration returns the configured focus phase length.
func (settings Settings) FocusDuration() time.Duration {
	return time.Duration(settings.FocusMinutes) * time.Minute
}

// BreakDuration returns the configured break phase length.
func (settings Settings) BreakDuration() time.Duration {
	return time.Duration(settings.BreakMinutes) * time.Minute
}

// Raw returns the settings as field texts.
func (settings Settings) Raw() RawSettings {
	return RawSettings{
		Focus:     strconv.Itoa(settings.FocusMinutes),
		Break:     strconv.Itoa(settings.BreakMinutes),
		Intervals: strconv.Itoa(settings.Intervals),
	}
}

// RawSettings holds the settings fields exactly as the user typed them.
type RawSettings struct {
	Focus     string
	Break     string
	Intervals string
}

// Parse converts field texts into Settings. Unusable fields fall back to defaults.
func (raw RawSettings) Parse() Settings {
	return Settings{
		FocusMinutes: ParsePositive(raw.Focus, DefaultFocusMinutes),
		BreakMinutes: ParsePositive(raw.Break, DefaultBreakMinutes),
		Intervals:    ParsePositive(raw.Intervals, DefaultIntervals),
	}
}

// ParsePositive reads the leading integer of value. Leading blanks and a sign
// are accepted and trailing garbage is ignored, so "12abc" yields 12.
// Empty, non-numeric, zero and negative values yield fallback; values above
// MaxMinutes are clamped.
func ParsePositive(value string, fallback int) int {
	index := 0
	for index < len(value) && isBlank(value[index]) {
		index++
	}

	negative := false
	if index < len(value) && (value[index] == '+' || value[index] == '-') {
		negative = value[index] == '-'
		index++
	}

	parsed := 0
	digits := 0
	for ; index < len(value) && value[index] >= '0' && value[index] <= '9'; index++ {
		if parsed <= MaxMinutes {
			parsed = parsed*10 + int(value[index]-'0')
		}
		digits++
	}

	if digits == 0 || negative || parsed <= 0 {
		return fallback
	}
	if parsed > MaxMinutes {
		parsed = MaxMinutes
	}
	return parsed
}

func isBlank(char byte) bool {
	switch char {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
