package satmad

import "math"

// meanMotionRad returns the angular mean motion in rad/s.
func (t *TLE) meanMotionRad() float64 {
	return t.MeanMotion * twoPi / secondsPerDay
}

// SemiMajorAxis returns the semi-major axis in kilometres, recovered from
// the observed mean motion by inverting Kepler's third law: a = (μ/n²)^⅓.
// This is the orbit actually flown, as opposed to any design value.
func (t *TLE) SemiMajorAxis() (float64, error) {
	if t.MeanMotion <= 0 {
		return 0, &DomainError{Op: "semi-major axis", Value: t.MeanMotion, Msg: "mean motion must be positive"}
	}
	n := t.meanMotionRad()
	return math.Cbrt(defaultGravity.Mu / (n * n)), nil
}

// Period returns the orbital period in seconds.
func (t *TLE) Period() (float64, error) {
	if t.MeanMotion <= 0 {
		return 0, &DomainError{Op: "period", Value: t.MeanMotion, Msg: "mean motion must be positive"}
	}
	return twoPi / t.meanMotionRad(), nil
}

// NodeRotationRate returns the secular rotation rate of the ascending node
// due to the J2 zonal harmonic, in deg/day:
//
//	dΩ/dt = -3/2 n J2 (R_E/p)² cos i
//
// For a sun-synchronous orbit this sits near, but not exactly at,
// SunSyncNodeRate.
func (t *TLE) NodeRotationRate() (float64, error) {
	a, err := t.SemiMajorAxis()
	if err != nil {
		return 0, err
	}
	n := t.meanMotionRad()
	p := a * (1 - t.Eccentricity*t.Eccentricity)
	ratio := defaultGravity.Radius / p

	rate := -1.5 * n * defaultGravity.J2 * ratio * ratio * math.Cos(t.Inclination*deg2rad)
	return rate * radSecToDegDay, nil
}

// ArgPerigeeRotationRate returns the secular rotation rate of the argument
// of perigee (the eccentricity vector) due to J2, in deg/day:
//
//	dω/dt = 3/4 n J2 (R_E/p)² (4 - 5 sin² i)
func (t *TLE) ArgPerigeeRotationRate() (float64, error) {
	a, err := t.SemiMajorAxis()
	if err != nil {
		return 0, err
	}
	n := t.meanMotionRad()
	p := a * (1 - t.Eccentricity*t.Eccentricity)
	ratio := defaultGravity.Radius / p
	sinI := math.Sin(t.Inclination * deg2rad)

	rate := 0.75 * n * defaultGravity.J2 * ratio * ratio * (4 - 5*sinI*sinI)
	return rate * radSecToDegDay, nil
}

// IdealFrozenEccentricity returns the eccentricity a frozen orbit would
// need at this inclination and semi-major axis:
//
//	e_f = -J3 R_E sin i / (2 J2 a)
//
// It is a reference value for frozen-orbit assessment, not a property of
// the element set itself; a frozen mission keeps its actual eccentricity
// near e_f with the argument of perigee near 90°.
func (t *TLE) IdealFrozenEccentricity() (float64, error) {
	a, err := t.SemiMajorAxis()
	if err != nil {
		return 0, err
	}
	if a == 0 {
		return 0, &DomainError{Op: "frozen eccentricity", Value: a, Msg: "semi-major axis is zero"}
	}
	return -defaultGravity.J3 * defaultGravity.Radius * math.Sin(t.Inclination*deg2rad) /
		(2 * defaultGravity.J2 * a), nil
}

// SunSynchronousOffset returns how far the J2 nodal rate sits from the
// ideal sun-synchronous target, in deg/day. A well-maintained
// sun-synchronous mission stays within a few millidegrees per day.
func (t *TLE) SunSynchronousOffset() (float64, error) {
	rate, err := t.NodeRotationRate()
	if err != nil {
		return 0, err
	}
	return rate - SunSyncNodeRate, nil
}
