package satmad

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	lineLen = 69

	// pivotYear splits the two-digit TLE epoch years: 57-99 belong to
	// 1957-1999 and 00-56 to 2000-2056. Getting this wrong produces a
	// plausible epoch a century off.
	pivotYear = 57
)

// Classification is the security classification carried on line 1.
type Classification rune

const (
	Unclassified Classification = 'U'
	Classified   Classification = 'C'
	Secret       Classification = 'S'
)

// TLE is a NORAD two-line element set: the TEME mean orbital elements of an
// Earth-orbiting object at a stated epoch. A TLE is immutable once parsed;
// all derived quantities are pure functions of its fields.
type TLE struct {
	// Line 0 (optional name)
	Name string

	// Line 1 fields
	SatelliteNumber int // NORAD catalog number
	Classification  Classification
	International   string  // international (launch) designator
	EpochYear       int     // full year, century pivot applied
	EpochDay        float64 // fractional day of year, 1.0 = Jan 1 00:00
	MeanMotionDot   float64 // first derivative of mean motion (rev/day²)
	MeanMotionDot2  float64 // second derivative of mean motion (rev/day³)
	Bstar           float64 // drag term (1/Earth radii)
	ElementNumber   int
	Checksum1       int

	// Line 2 fields
	Inclination      float64 // degrees, [0, 180]
	RightAscension   float64 // RAAN, degrees, [0, 360)
	Eccentricity     float64 // dimensionless, [0, 1)
	ArgOfPerigee     float64 // degrees, [0, 360)
	MeanAnomaly      float64 // degrees, [0, 360)
	MeanMotion       float64 // rev/day, > 0
	RevolutionNumber int     // revolutions at epoch
	Checksum2        int
}

// ParseTLE parses the two lines of an element set into a validated TLE.
// Parsing either fully succeeds or fails with a FormatError, ChecksumError
// or ConsistencyError; no partially populated TLE is ever returned.
func ParseTLE(line1, line2 string) (*TLE, error) {
	return ParseNamedTLE("", line1, line2)
}

// ParseNamedTLE is ParseTLE with the satellite name from an optional
// leading "line 0" attached to the record.
func ParseNamedTLE(name, line1, line2 string) (*TLE, error) {
	if err := checkLine(1, '1', line1); err != nil {
		return nil, err
	}
	if err := checkLine(2, '2', line2); err != nil {
		return nil, err
	}

	tle := &TLE{Name: strings.TrimSpace(name)}
	if err := tle.parseLine1(line1); err != nil {
		return nil, err
	}
	if err := tle.parseLine2(line2); err != nil {
		return nil, err
	}
	return tle, nil
}

// checkLine validates length, the leading line marker and the checksum
// before any field is extracted.
func checkLine(num int, marker byte, line string) error {
	if len(line) != lineLen {
		return &FormatError{Line: num, Msg: fmt.Sprintf("must be %d characters, got %d", lineLen, len(line))}
	}
	if line[0] != marker {
		return &FormatError{Line: num, Msg: fmt.Sprintf("must begin with %q", rune(marker))}
	}
	want := line[68]
	if want < '0' || want > '9' {
		return &FormatError{Line: num, Field: "checksum", Msg: fmt.Sprintf("%q is not a digit", rune(want))}
	}
	if got := checksum(line); got != int(want-'0') {
		return &ChecksumError{Line: num, Want: int(want - '0'), Got: got}
	}
	return nil
}

// checksum is the modulo-10 sum of the digits in the first 68 columns of a
// line, with '-' counting as 1 and every other character as 0.
func checksum(line string) int {
	sum := 0
	for i := 0; i < 68; i++ {
		c := line[i]
		switch {
		case c >= '0' && c <= '9':
			sum += int(c - '0')
		case c == '-':
			sum++
		}
	}
	return sum % 10
}

func (t *TLE) parseLine1(line string) error {
	var err error
	if t.SatelliteNumber, err = parseIntField(line, 1, 2, 7, "catalog number"); err != nil {
		return err
	}

	switch c := Classification(line[7]); c {
	case Unclassified, Classified, Secret:
		t.Classification = c
	default:
		return &FormatError{Line: 1, Field: "classification", Msg: fmt.Sprintf("unknown designator %q", rune(line[7]))}
	}

	t.International = strings.TrimSpace(line[9:17])

	yy, err := parseIntField(line, 1, 18, 20, "epoch year")
	if err != nil {
		return err
	}
	if yy >= pivotYear {
		t.EpochYear = 1900 + yy
	} else {
		t.EpochYear = 2000 + yy
	}

	if t.EpochDay, err = parseFloatField(line, 1, 20, 32, "epoch day"); err != nil {
		return err
	}
	if t.MeanMotionDot, err = parsePointAssumed(line, 1, 33, 43, "first mean motion derivative"); err != nil {
		return err
	}
	if t.MeanMotionDot2, err = parseExponentAssumed(line, 1, 44, 52, "second mean motion derivative"); err != nil {
		return err
	}
	if t.Bstar, err = parseExponentAssumed(line, 1, 53, 61, "bstar"); err != nil {
		return err
	}
	if t.ElementNumber, err = parseIntField(line, 1, 64, 68, "element number"); err != nil {
		return err
	}

	t.Checksum1 = int(line[68] - '0')
	return nil
}

func (t *TLE) parseLine2(line string) error {
	catalog, err := parseIntField(line, 2, 2, 7, "catalog number")
	if err != nil {
		return err
	}
	if catalog != t.SatelliteNumber {
		return &ConsistencyError{Catalog1: t.SatelliteNumber, Catalog2: catalog}
	}

	if t.Inclination, err = parseFloatField(line, 2, 8, 16, "inclination"); err != nil {
		return err
	}
	if t.Inclination < 0 || t.Inclination > 180 {
		return &FormatError{Line: 2, Field: "inclination", Msg: fmt.Sprintf("%g outside [0, 180] degrees", t.Inclination)}
	}

	if t.RightAscension, err = parseFloatField(line, 2, 17, 25, "right ascension"); err != nil {
		return err
	}

	// Eccentricity carries no decimal point: seven digits with "0." assumed.
	ecc, err := strconv.ParseFloat("0."+strings.TrimSpace(line[26:33]), 64)
	if err != nil {
		return &FormatError{Line: 2, Field: "eccentricity", Msg: fmt.Sprintf("%q is not a seven-digit fraction", line[26:33])}
	}
	t.Eccentricity = ecc

	if t.ArgOfPerigee, err = parseFloatField(line, 2, 34, 42, "argument of perigee"); err != nil {
		return err
	}
	if t.MeanAnomaly, err = parseFloatField(line, 2, 43, 51, "mean anomaly"); err != nil {
		return err
	}
	if t.MeanMotion, err = parseFloatField(line, 2, 52, 63, "mean motion"); err != nil {
		return err
	}
	if t.MeanMotion <= 0 {
		return &FormatError{Line: 2, Field: "mean motion", Msg: fmt.Sprintf("%g is not positive", t.MeanMotion)}
	}
	if t.RevolutionNumber, err = parseIntField(line, 2, 63, 68, "revolution number"); err != nil {
		return err
	}

	t.Checksum2 = int(line[68] - '0')
	return nil
}

func parseIntField(line string, num, lo, hi int, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(line[lo:hi]))
	if err != nil {
		return 0, &FormatError{Line: num, Field: field, Msg: fmt.Sprintf("%q is not an integer", line[lo:hi])}
	}
	return v, nil
}

func parseFloatField(line string, num, lo, hi int, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(line[lo:hi]), 64)
	if err != nil {
		return 0, &FormatError{Line: num, Field: field, Msg: fmt.Sprintf("%q is not a number", line[lo:hi])}
	}
	return v, nil
}

// parsePointAssumed decodes fields written as a bare fraction with an
// optional sign, e.g. " .00000010" or "-.00012345", by restoring the
// leading zero before the decimal point.
func parsePointAssumed(line string, num, lo, hi int, field string) (float64, error) {
	s := strings.TrimSpace(line[lo:hi])
	switch {
	case strings.HasPrefix(s, "."):
		s = "0" + s
	case strings.HasPrefix(s, "-."):
		s = "-0" + s[1:]
	case strings.HasPrefix(s, "+."):
		s = "0" + s[1:]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FormatError{Line: num, Field: field, Msg: fmt.Sprintf("%q is not a signed fraction", line[lo:hi])}
	}
	return v, nil
}

// parseExponentAssumed decodes the implied-exponent fields (bstar and the
// second mean motion derivative): a signed five-digit mantissa scaled by
// 1e-5, followed by a signed one-digit base-10 exponent.
func parseExponentAssumed(line string, num, lo, hi int, field string) (float64, error) {
	mant, err := strconv.ParseFloat(strings.TrimSpace(line[lo:hi-2]), 64)
	if err != nil {
		return 0, &FormatError{Line: num, Field: field, Msg: fmt.Sprintf("mantissa %q is not a number", line[lo:hi-2])}
	}
	exp, err := strconv.ParseInt(strings.TrimSpace(line[hi-2:hi]), 10, 64)
	if err != nil {
		return 0, &FormatError{Line: num, Field: field, Msg: fmt.Sprintf("exponent %q is not a digit", line[hi-2:hi])}
	}
	return mant * 1e-5 * math.Pow(10, float64(exp)), nil
}

// Epoch returns the element-set epoch as a UTC instant, reconstructed from
// the pivoted year and the fractional day of year.
func (t *TLE) Epoch() time.Time {
	days := int(t.EpochDay)
	frac := t.EpochDay - float64(days)

	// Day 1 means zero full days past Jan 1 00:00.
	base := time.Date(t.EpochYear, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days-1)

	// Round to the nearest nanosecond to absorb float noise from the
	// fractional-day multiplication.
	nanos := int64(math.Round(frac * secondsPerDay * 1e9))
	return base.Add(time.Duration(nanos))
}
