package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotID(t *testing.T) {
	id, err := ParseSlotID("2024-06-03T10:00-11:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", id.Date)
	assert.Equal(t, "10:00", id.Start)
	assert.Equal(t, "11:00", id.End)
}

func TestParseSlotIDRoundTrip(t *testing.T) {
	const raw = "2024-06-03T19:00-20:00"
	id, err := ParseSlotID(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, id.String())
}

func TestParseSlotIDRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"2024-06-03",
		"2024-06-03T10:00",
		"2024-06-03 10:00-11:00",
		"2024-13-03T10:00-11:00",
		"2024-06-03T25:00-11:00",
		"2024-06-03T10:00-11:99",
		"not-a-dateT10:00-11:00",
	}

	for _, raw := range cases {
		_, err := ParseSlotID(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestSlotIDFromSlot(t *testing.T) {
	s := Slot{Date: "2024-06-03", StartTime: "10:00", EndTime: "11:00"}
	assert.Equal(t, "2024-06-03T10:00-11:00", s.SlotID().String())
}
