package satmad

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// OMM is a single CCSDS Orbit Mean-elements Message in the JSON shape
// published by catalog services such as space-track.org. It carries the
// same mean elements as a TLE with the epoch spelled out in ISO 8601.
type OMM struct {
	ObjectName         string  `json:"OBJECT_NAME"`
	ObjectID           string  `json:"OBJECT_ID"` // e.g. "2015-028A"
	EpochStr           string  `json:"EPOCH"`
	MeanMotion         float64 `json:"MEAN_MOTION"`  // rev/day
	Eccentricity       float64 `json:"ECCENTRICITY"` // dimensionless
	Inclination        float64 `json:"INCLINATION"`  // degrees
	RAOfAscNode        float64 `json:"RA_OF_ASC_NODE"`
	ArgOfPericenter    float64 `json:"ARG_OF_PERICENTER"`
	MeanAnomaly        float64 `json:"MEAN_ANOMALY"`
	EphemerisType      int     `json:"EPHEMERIS_TYPE"`
	ClassificationType string  `json:"CLASSIFICATION_TYPE"`
	NoradCatID         int     `json:"NORAD_CAT_ID"`
	ElementSetNo       int     `json:"ELEMENT_SET_NO"`
	RevAtEpoch         int     `json:"REV_AT_EPOCH"`
	BStar              float64 `json:"BSTAR"`
	MeanMotionDot      float64 `json:"MEAN_MOTION_DOT"`  // rev/day²
	MeanMotionDDot     float64 `json:"MEAN_MOTION_DDOT"` // rev/day³
}

// ParseOMMs decodes a JSON array of OMM objects from caller-supplied bytes.
func ParseOMMs(data []byte) ([]OMM, error) {
	var omms []OMM
	if err := json.Unmarshal(data, &omms); err != nil {
		return nil, fmt.Errorf("decoding OMM JSON: %w", err)
	}
	return omms, nil
}

// ToTLE maps the message onto a TLE record, enforcing the same element
// bounds the line parser does. OMM carries no checksums, so they are
// derived from the exported lines.
func (o *OMM) ToTLE() (*TLE, error) {
	if o.Eccentricity < 0 || o.Eccentricity >= 1 {
		return nil, fmt.Errorf("OMM eccentricity %.10f outside [0, 1)", o.Eccentricity)
	}
	if o.Inclination < 0 || o.Inclination > 180 {
		return nil, fmt.Errorf("OMM inclination %.4f outside [0, 180] degrees", o.Inclination)
	}
	if o.MeanMotion <= 0 {
		return nil, fmt.Errorf("OMM mean motion %.8f is not positive", o.MeanMotion)
	}

	class := Unclassified
	if o.ClassificationType != "" {
		switch c := Classification(o.ClassificationType[0]); c {
		case Unclassified, Classified, Secret:
			class = c
		default:
			return nil, fmt.Errorf("unknown OMM classification %q", o.ClassificationType)
		}
	}

	intl, err := internationalFromObjectID(o.ObjectID)
	if err != nil {
		return nil, err
	}
	year, day, err := epochFromOMM(o.EpochStr)
	if err != nil {
		return nil, err
	}

	t := &TLE{
		Name:            o.ObjectName,
		SatelliteNumber: o.NoradCatID,
		Classification:  class,
		International:   intl,
		EpochYear:       year,
		EpochDay:        day,
		MeanMotionDot:   o.MeanMotionDot,
		MeanMotionDot2:  o.MeanMotionDDot,
		Bstar:           o.BStar,
		ElementNumber:   o.ElementSetNo,

		Inclination:      o.Inclination,
		RightAscension:   o.RAOfAscNode,
		Eccentricity:     o.Eccentricity,
		ArgOfPerigee:     o.ArgOfPericenter,
		MeanAnomaly:      o.MeanAnomaly,
		MeanMotion:       o.MeanMotion,
		RevolutionNumber: o.RevAtEpoch,
	}

	line1, line2, err := t.Lines()
	if err != nil {
		return nil, fmt.Errorf("OMM does not fit the TLE format: %w", err)
	}
	t.Checksum1 = int(line1[68] - '0')
	t.Checksum2 = int(line2[68] - '0')
	return t, nil
}

// internationalFromObjectID converts an OMM OBJECT_ID ("2015-028A") to the
// TLE international designator form ("15028A").
func internationalFromObjectID(objectID string) (string, error) {
	parts := strings.SplitN(objectID, "-", 2)
	if len(parts) != 2 || len(parts[0]) < 2 || len(parts[1]) < 4 {
		return "", fmt.Errorf("OBJECT_ID %q is not of the form YYYY-NNNP", objectID)
	}
	return parts[0][len(parts[0])-2:] + parts[1], nil
}

// ommEpochLayouts covers the epoch spellings seen in catalog exports:
// with and without a zone designator, with and without fractional seconds.
var ommEpochLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// epochFromOMM converts an ISO 8601 epoch string to the TLE epoch form:
// full year plus fractional day of year. Strings without a zone are read
// as UTC.
func epochFromOMM(epochStr string) (int, float64, error) {
	var when time.Time
	var err error
	for _, layout := range ommEpochLayouts {
		if when, err = time.ParseInLocation(layout, epochStr, time.UTC); err == nil {
			break
		}
	}
	if err != nil {
		return 0, 0, fmt.Errorf("parsing OMM epoch %q: %w", epochStr, err)
	}

	when = when.UTC()
	year := when.Year()
	if year < 1957 || year > 2056 {
		return 0, 0, fmt.Errorf("OMM epoch year %d outside the 1957-2056 TLE window", year)
	}

	midnight := time.Date(year, when.Month(), when.Day(), 0, 0, 0, 0, time.UTC)
	day := float64(when.YearDay()) + when.Sub(midnight).Seconds()/secondsPerDay
	return year, day, nil
}
