package satmad

import (
	"math"
	"time"
)

// Defaults for synthetic element sets that have no catalog identity.
const (
	placeholderCatalog = 99999
	placeholderIntl    = "12345A"
)

// NewGeoTLE builds the element set of an ideal geostationary satellite
// parked above the given longitude (degrees east) at the given epoch. The
// orbit is circular to the precision the format carries, with a sidereal-day
// period and the node placed so the satellite sits over the requested
// longitude at epoch. Earth's geopotential will drift a real satellite off
// this slot within weeks, so the result is a starting point, not a
// station-keeping plan.
func NewGeoTLE(name string, epoch time.Time, longitudeDeg float64) (*TLE, error) {
	epoch = epoch.UTC()
	year := epoch.Year()
	if year < 1957 || year > 2056 {
		return nil, &FormatError{Line: 1, Field: "epoch year", Msg: "outside the 1957-2056 TLE window"}
	}

	midnight := time.Date(year, epoch.Month(), epoch.Day(), 0, 0, 0, 0, time.UTC)
	day := float64(epoch.YearDay()) + epoch.Sub(midnight).Seconds()/secondsPerDay

	raan := math.Mod(gmstDegrees(epoch)+longitudeDeg, 360)
	if raan < 0 {
		raan += 360
	}

	t := &TLE{
		Name:            name,
		SatelliteNumber: placeholderCatalog,
		Classification:  Unclassified,
		International:   placeholderIntl,
		EpochYear:       year,
		EpochDay:        day,
		ElementNumber:   1,

		Inclination:    0,
		RightAscension: raan,
		// The smallest eccentricity the seven-digit field can carry;
		// exactly zero is rejected by SGP4-era tooling.
		Eccentricity: 1e-7,
		ArgOfPerigee: 0,
		MeanAnomaly:  0,
		MeanMotion:   secondsPerDay / siderealDaySec,
	}

	// Checksums exist only on the wire format; derive them from the
	// exported lines so the record satisfies the parse invariants.
	line1, line2, err := t.Lines()
	if err != nil {
		return nil, err
	}
	t.Checksum1 = int(line1[68] - '0')
	t.Checksum2 = int(line2[68] - '0')
	return t, nil
}
