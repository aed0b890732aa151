package daycycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolarAnchors_MidLatitudes(t *testing.T) {
	date := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)

	a, err := SolarAnchors(date, 60.1695, 24.9354)
	require.NoError(t, err)

	assert.Less(t, a.Sunrise, a.Noon)
	assert.Less(t, a.Noon, a.Sunset)
	assert.GreaterOrEqual(t, a.Sunrise, 0.0)
	assert.Less(t, a.Sunset, 24.0)

	// The stretched curve still peaks at its noon and is dark outside the
	// anchors.
	assert.Equal(t, 1.0, a.Brightness(a.Noon))
	assert.Equal(t, 0.0, a.Brightness(a.Sunrise-0.5))
	assert.Equal(t, 0.0, a.Brightness(a.Sunset+0.5))
}

func TestSolarAnchors_Equator(t *testing.T) {
	date := time.Date(2025, time.June, 21, 12, 0, 0, 0, time.UTC)

	a, err := SolarAnchors(date, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 12, a.Noon, 1.5)
}
