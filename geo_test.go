package satmad

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGMSTDegrees(t *testing.T) {
	// J2000.0 reference epoch: GMST is the leading term of the polynomial.
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.InDelta(t, 280.46062, gmstDegrees(j2000), 0.001)
}

func TestNewGeoTLE(t *testing.T) {
	epoch := time.Date(2020, 6, 12, 0, 0, 0, 0, time.UTC)

	tle, err := NewGeoTLE("GEO-TEST", epoch, 42.0)
	require.NoError(t, err)

	assert.Equal(t, "GEO-TEST", tle.Name)
	assert.Equal(t, placeholderCatalog, tle.SatelliteNumber)
	assert.Equal(t, Unclassified, tle.Classification)
	assert.Equal(t, 2020, tle.EpochYear)
	assert.InDelta(t, 164.0, tle.EpochDay, 1e-9)

	// One revolution per sidereal day.
	assert.InDelta(t, 1.0027379, tle.MeanMotion, 1e-6)

	// The node is placed at GMST plus the requested longitude.
	assert.InDelta(t, 302.7823, tle.RightAscension, 0.01)

	assert.Zero(t, tle.Inclination)
	assert.InDelta(t, 1e-7, tle.Eccentricity, 1e-12)

	period, err := tle.Period()
	require.NoError(t, err)
	assert.InDelta(t, siderealDaySec, period, 0.05)

	// An equatorial orbit does not regress.
	// (cos 0 = 1, so the J2 rate is maximal in magnitude instead; it must
	// be negative for a prograde orbit.)
	rate, err := tle.NodeRotationRate()
	require.NoError(t, err)
	assert.Negative(t, rate)
}

func TestNewGeoTLE_RoundTripsThroughParse(t *testing.T) {
	epoch := time.Date(2020, 6, 12, 6, 30, 0, 0, time.UTC)

	tle, err := NewGeoTLE("GEO-TEST", epoch, -75.0)
	require.NoError(t, err)

	line1, line2, err := tle.Lines()
	require.NoError(t, err)

	parsed, err := ParseTLE(line1, line2)
	require.NoError(t, err)
	assert.Equal(t, tle.Checksum1, parsed.Checksum1)
	assert.Equal(t, tle.Checksum2, parsed.Checksum2)
	// The fractional-day field carries eight decimals, ~0.9 ms resolution.
	assert.WithinDuration(t, epoch, parsed.Epoch(), 5*time.Millisecond)

	// The synthetic RAAN keeps the [0, 360) convention even for western
	// longitudes.
	assert.GreaterOrEqual(t, parsed.RightAscension, 0.0)
	assert.Less(t, parsed.RightAscension, 360.0)
}

func TestNewGeoTLE_EpochWindow(t *testing.T) {
	var ferr *FormatError

	_, err := NewGeoTLE("", time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), 0)
	require.ErrorAs(t, err, &ferr)

	_, err = NewGeoTLE("", time.Date(2060, 1, 1, 0, 0, 0, 0, time.UTC), 0)
	require.ErrorAs(t, err, &ferr)
}
