package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodParse(t *testing.T) {
	tod, err := Parse("07:30")
	require.NoError(t, err)
	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "07:30:00", v)

	_, err = Parse("25:00")
	assert.Error(t, err)
}

func TestCombineDateAndTod(t *testing.T) {
	tod, err := Parse("09:00:00")
	require.NoError(t, err)
	wib := time.FixedZone("WIB", 7*3600)

	got := CombineDateAndTod(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), tod, wib)

	assert.Equal(t, time.Date(2025, 3, 3, 2, 0, 0, 0, time.UTC), got)
}

func TestTodScanDropsDate(t *testing.T) {
	var tod Tod
	dated := time.Date(2025, 3, 3, 9, 15, 0, 0, time.FixedZone("WIB", 7*3600))
	require.NoError(t, tod.Scan(dated))
	assert.Equal(t, time.Date(0, 1, 1, 9, 15, 0, 0, time.UTC), tod.Time)

	wib := time.FixedZone("WIB", 7*3600)
	got := CombineDateAndTod(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), tod, wib)
	assert.Equal(t, time.Date(2025, 3, 4, 2, 15, 0, 0, time.UTC), got)

	require.NoError(t, tod.Scan([]byte("07:00")))
	assert.Equal(t, "07:00:00", tod.String())
}

func TestTodJSON(t *testing.T) {
	tod, err := Parse("13:45")
	require.NoError(t, err)

	b, err := tod.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"13:45:00"`, string(b))

	var back Tod
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, tod.Time, back.Time)

	assert.Error(t, back.UnmarshalJSON([]byte(`"bukan jam"`)))
}
