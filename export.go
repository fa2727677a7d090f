package satmad

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Lines formats the element set back into its two fixed-column 69-character
// lines, recomputing the checksums. A record obtained from ParseTLE exports
// to the precision the format carries, so parsing the result reproduces
// every field.
func (t *TLE) Lines() (string, string, error) {
	if t.SatelliteNumber < 0 || t.SatelliteNumber > 99999 {
		return "", "", &FormatError{Line: 1, Field: "catalog number", Msg: fmt.Sprintf("%d does not fit five columns", t.SatelliteNumber)}
	}
	if t.EpochYear < 1957 || t.EpochYear > 2056 {
		return "", "", &FormatError{Line: 1, Field: "epoch year", Msg: fmt.Sprintf("%d outside the 1957-2056 TLE window", t.EpochYear)}
	}
	if len(t.International) > 8 {
		return "", "", &FormatError{Line: 1, Field: "international designator", Msg: fmt.Sprintf("%q does not fit eight columns", t.International)}
	}
	if t.EpochDay < 0 || t.EpochDay >= 367 {
		return "", "", &FormatError{Line: 1, Field: "epoch day", Msg: fmt.Sprintf("%g outside the day-of-year range", t.EpochDay)}
	}
	if math.Abs(t.MeanMotionDot) >= 1 {
		return "", "", &FormatError{Line: 1, Field: "first mean motion derivative", Msg: fmt.Sprintf("|%g| must be below 1", t.MeanMotionDot)}
	}
	if t.ElementNumber < 0 || t.ElementNumber > 9999 {
		return "", "", &FormatError{Line: 1, Field: "element number", Msg: fmt.Sprintf("%d does not fit four columns", t.ElementNumber)}
	}
	if t.Inclination < 0 || t.Inclination > 180 {
		return "", "", &FormatError{Line: 2, Field: "inclination", Msg: fmt.Sprintf("%g outside [0, 180] degrees", t.Inclination)}
	}
	for _, angle := range []struct {
		field string
		value float64
	}{
		{"right ascension", t.RightAscension},
		{"argument of perigee", t.ArgOfPerigee},
		{"mean anomaly", t.MeanAnomaly},
	} {
		if angle.value < 0 || angle.value >= 360 {
			return "", "", &FormatError{Line: 2, Field: angle.field, Msg: fmt.Sprintf("%g outside [0, 360) degrees", angle.value)}
		}
	}
	if t.Eccentricity < 0 || t.Eccentricity >= 1 {
		return "", "", &FormatError{Line: 2, Field: "eccentricity", Msg: fmt.Sprintf("%g outside [0, 1)", t.Eccentricity)}
	}
	if t.MeanMotion <= 0 || t.MeanMotion >= 100 {
		return "", "", &FormatError{Line: 2, Field: "mean motion", Msg: fmt.Sprintf("%g does not fit the field", t.MeanMotion)}
	}
	if t.RevolutionNumber < 0 || t.RevolutionNumber > 99999 {
		return "", "", &FormatError{Line: 2, Field: "revolution number", Msg: fmt.Sprintf("%d does not fit five columns", t.RevolutionNumber)}
	}

	nddot, err := formatExponentAssumed(t.MeanMotionDot2)
	if err != nil {
		return "", "", &FormatError{Line: 1, Field: "second mean motion derivative", Msg: err.Error()}
	}
	bstar, err := formatExponentAssumed(t.Bstar)
	if err != nil {
		return "", "", &FormatError{Line: 1, Field: "bstar", Msg: err.Error()}
	}

	var b1 strings.Builder
	fmt.Fprintf(&b1, "1 %05d%c %-8s %02d%012.8f %s %s %s 0 %4d",
		t.SatelliteNumber,
		rune(t.Classification),
		t.International,
		t.EpochYear%100,
		t.EpochDay,
		formatPointAssumed(t.MeanMotionDot),
		nddot,
		bstar,
		t.ElementNumber,
	)

	var b2 strings.Builder
	fmt.Fprintf(&b2, "2 %05d %8.4f %8.4f %07d %8.4f %8.4f %11.8f%5d",
		t.SatelliteNumber,
		t.Inclination,
		t.RightAscension,
		int(math.Round(t.Eccentricity*1e7)),
		t.ArgOfPerigee,
		t.MeanAnomaly,
		t.MeanMotion,
		t.RevolutionNumber,
	)

	return appendChecksum(b1.String()), appendChecksum(b2.String()), nil
}

// String renders the element set in the familiar three-line (or two-line,
// when unnamed) catalog form.
func (t *TLE) String() string {
	line1, line2, err := t.Lines()
	if err != nil {
		return fmt.Sprintf("invalid TLE: %v", err)
	}
	if t.Name != "" {
		return t.Name + "\n" + line1 + "\n" + line2 + "\n"
	}
	return line1 + "\n" + line2 + "\n"
}

func appendChecksum(body string) string {
	return body + strconv.Itoa(checksum(body))
}

// formatPointAssumed renders a signed fraction without its leading zero
// into ten columns, e.g. " .00000010" or "-.00012345".
func formatPointAssumed(v float64) string {
	sign := " "
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := fmt.Sprintf("%.8f", v) // "0.NNNNNNNN"
	return sign + s[1:]
}

// formatExponentAssumed renders a value into the eight-column implied
// exponent form: signed five-digit mantissa and signed one-digit exponent,
// e.g. " 20594-4". Magnitudes below 1e-14 collapse to zero.
func formatExponentAssumed(v float64) (string, error) {
	if math.Abs(v) < 1e-14 {
		return " 00000-0", nil
	}
	sign := " "
	if v < 0 {
		sign = "-"
		v = -v
	}
	exp := int(math.Floor(math.Log10(v))) + 1
	digits := int(math.Round(v / math.Pow(10, float64(exp)) * 1e5))
	if digits >= 100000 {
		digits /= 10
		exp++
	}
	if exp > 9 || exp < -9 {
		return "", fmt.Errorf("%g does not fit a one-digit exponent", v)
	}
	return fmt.Sprintf("%s%05d%+d", sign, digits, exp), nil
}
