package satmad

import (
	"math"
	"time"
)

// Mathematical and time constants
const (
	twoPi   = 2 * math.Pi
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi

	secondsPerDay  = 86400.0
	siderealDaySec = 86164.0905 // mean sidereal day in seconds

	// radSecToDegDay converts an angular rate from rad/s to deg/day.
	radSecToDegDay = rad2deg * secondsPerDay
)

// SunSyncNodeRate is the nodal drift a sun-synchronous orbit targets:
// one full revolution of the node per year, in deg/day.
const SunSyncNodeRate = 360.0 / 365.25

// GravityModel is a frozen table of Earth physical constants used by the
// element-set calculations. Values are fixed reference constants, never
// derived from an element set.
type GravityModel struct {
	Mu     float64 // gravitational parameter GM (km³/s²)
	Radius float64 // equatorial radius (km)
	J2     float64 // second zonal harmonic (oblateness)
	J3     float64 // third zonal harmonic (pear-shape asymmetry)
}

var (
	// WGS72 is the gravity model the SGP4 orbit theory, and therefore the
	// published TLE mean elements, are defined against.
	WGS72 = GravityModel{
		Mu:     398600.8,
		Radius: 6378.135,
		J2:     0.001082616,
		J3:     -0.00000253881,
	}

	// WGS84 is provided for callers that need the modern geodetic model.
	WGS84 = GravityModel{
		Mu:     398600.5,
		Radius: 6378.137,
		J2:     0.00108262998905,
		J3:     -0.00000253215306,
	}
)

// defaultGravity is read-only for the process lifetime. All derived
// quantities use WGS72 for consistency with the definition of the TLE
// mean elements.
var defaultGravity = WGS72

func julianDate(t time.Time) float64 {
	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())
	h := float64(t.Hour())
	min := float64(t.Minute())
	s := float64(t.Second())
	ns := float64(t.Nanosecond())

	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(y / 100.0)
	b := 2 - a + math.Floor(a/4.0)
	day := math.Floor(365.25*(y+4716.0)) +
		math.Floor(30.6001*(m+1.0)) +
		d + b - 1524.5
	frac := (h + min/60.0 + s/3600.0 + ns/3.6e12) / 24.0
	return day + frac
}

// gmstDegrees is the Greenwich Mean Sidereal Time at t, in degrees [0, 360).
func gmstDegrees(t time.Time) float64 {
	jd := julianDate(t.UTC())
	tc := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*tc*tc -
		tc*tc*tc/38710000.0

	gmst = math.Mod(gmst, 360.0)
	if gmst < 0 {
		gmst += 360.0
	}
	return gmst
}
