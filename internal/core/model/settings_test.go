package model

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePositive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  int
	}{
		{name: "plain", input: "30", want: 30},
		{name: "leading blanks", input: "  7", want: 7},
		{name: "trailing garbage", input: "12abc", want: 12},
		{name: "decimal truncated", input: "1.5", want: 1},
		{name: "explicit plus", input: "+9", want: 9},
		{name: "empty", input: "", want: 25},
		{name: "letters", input: "abc", want: 25},
		{name: "zero", input: "0", want: 25},
		{name: "negative", input: "-3", want: 25},
		{name: "sign only", input: "-", want: 25},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParsePositive(tc.input, 25))
		})
	}
}

func TestParsePositive_ClampsHugeValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MaxMinutes, ParsePositive("99999999999999999999999", 1))
	assert.Equal(t, MaxMinutes, ParsePositive("200000000", 1))
	assert.Equal(t, MaxMinutes, ParsePositive(strconv.Itoa(MaxMinutes), 1))
	assert.Equal(t, MaxMinutes-1, ParsePositive(strconv.Itoa(MaxMinutes-1), 1))
}

func TestRawSettingsParse_FallsBackPerField(t *testing.T) {
	t.Parallel()

	settings := RawSettings{Focus: "50", Break: "", Intervals: "x"}.Parse()
	assert.Equal(t, Settings{FocusMinutes: 50, BreakMinutes: 5, Intervals: 4}, settings)
	assert.Equal(t, 50*time.Minute, settings.FocusDuration())
	assert.Equal(t, 5*time.Minute, settings.BreakDuration())
}

func TestSettingsRaw(t *testing.T) {
	t.Parallel()

	raw := DefaultSettings().Raw()
	assert.Equal(t, RawSettings{Focus: "25", Break: "5", Intervals: "4"}, raw)
	assert.Equal(t, DefaultSettings(), raw.Parse())
}
