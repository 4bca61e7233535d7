package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30}, tod)

	tod, err = ParseTimeOfDay("19:00:00")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 19, Minute: 0}, tod)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("not a time")
	assert.Error(t, err)
}

func TestTimeOfDay_On(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	day := time.Date(2025, 6, 2, 15, 45, 12, 0, loc)
	anchored := NewTimeOfDay(9, 0).On(day)

	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, loc), anchored)
	assert.Equal(t, loc, anchored.Location())
}

func TestTimeOfDay_JSON(t *testing.T) {
	data, err := json.Marshal(NewTimeOfDay(9, 5))
	require.NoError(t, err)
	assert.Equal(t, `"09:05"`, string(data))

	var tod TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"18:30"`), &tod))
	assert.Equal(t, NewTimeOfDay(18, 30), tod)
}

func TestTimeOfDay_Scan(t *testing.T) {
	var tod TimeOfDay

	require.NoError(t, tod.Scan([]byte("09:00:00")))
	assert.Equal(t, NewTimeOfDay(9, 0), tod)

	require.NoError(t, tod.Scan(time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, NewTimeOfDay(14, 30), tod)

	assert.Error(t, tod.Scan(42))
}

func TestTimeOfDay_Value(t *testing.T) {
	v, err := NewTimeOfDay(9, 30).Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", v)
}

func TestTimeOfDay_Minutes(t *testing.T) {
	assert.Equal(t, 570, NewTimeOfDay(9, 30).Minutes())
	assert.Equal(t, 0, NewTimeOfDay(0, 0).Minutes())
}
