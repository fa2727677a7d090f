package satmad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ommJSONExample = `
[{"OBJECT_NAME":"ISS (ZARYA)","OBJECT_ID":"1998-067A","EPOCH":"2025-05-26T13:06:57.824640","MEAN_MOTION":15.4975272,"ECCENTRICITY":0.0002241,"INCLINATION":51.6382,"RA_OF_ASC_NODE":54.2937,"ARG_OF_PERICENTER":147.4648,"MEAN_ANOMALY":271.6158,"EPHEMERIS_TYPE":0,"CLASSIFICATION_TYPE":"U","NORAD_CAT_ID":25544,"ELEMENT_SET_NO":999,"REV_AT_EPOCH":51180,"BSTAR":0.00019155,"MEAN_MOTION_DOT":0.00010397,"MEAN_MOTION_DDOT":0},
{"OBJECT_NAME":"SENTINEL-2A","OBJECT_ID":"2015-028A","EPOCH":"2020-06-12T12:11:55.880160Z","MEAN_MOTION":14.308182,"ECCENTRICITY":0.0001206,"INCLINATION":98.5692,"RA_OF_ASC_NODE":238.8182,"ARG_OF_PERICENTER":86.9662,"MEAN_ANOMALY":273.1664,"EPHEMERIS_TYPE":0,"CLASSIFICATION_TYPE":"U","NORAD_CAT_ID":40697,"ELEMENT_SET_NO":999,"REV_AT_EPOCH":25975,"BSTAR":0.000020594,"MEAN_MOTION_DOT":0.0000001,"MEAN_MOTION_DDOT":0}]
`

func TestParseOMMs(t *testing.T) {
	omms, err := ParseOMMs([]byte(ommJSONExample))
	require.NoError(t, err)
	require.Len(t, omms, 2)

	iss := omms[0]
	assert.Equal(t, "ISS (ZARYA)", iss.ObjectName)
	assert.Equal(t, 25544, iss.NoradCatID)
	assert.Equal(t, "2025-05-26T13:06:57.824640", iss.EpochStr)
	assert.InDelta(t, 15.4975272, iss.MeanMotion, 1e-9)
}

func TestParseOMMs_BadJSON(t *testing.T) {
	_, err := ParseOMMs([]byte(`{"OBJECT_NAME":`))
	require.Error(t, err)
}

func TestOMMToTLE(t *testing.T) {
	omms, err := ParseOMMs([]byte(ommJSONExample))
	require.NoError(t, err)

	tle, err := omms[0].ToTLE()
	require.NoError(t, err)

	assert.Equal(t, "ISS (ZARYA)", tle.Name)
	assert.Equal(t, 25544, tle.SatelliteNumber)
	assert.Equal(t, Unclassified, tle.Classification)
	assert.Equal(t, "98067A", tle.International)
	assert.Equal(t, 2025, tle.EpochYear)
	// May 26 is day 146; 13:06:57.824640 is 47217.82464 s into the day.
	assert.InDelta(t, 146.5465026, tle.EpochDay, 1e-6)
	assert.InDelta(t, 51.6382, tle.Inclination, 1e-9)
	assert.InDelta(t, 0.0002241, tle.Eccentricity, 1e-12)
	assert.InDelta(t, 15.4975272, tle.MeanMotion, 1e-9)
	assert.Equal(t, 51180, tle.RevolutionNumber)

	// Checksums are derived from the exported lines, so the record parses
	// back cleanly.
	line1, line2, err := tle.Lines()
	require.NoError(t, err)
	reparsed, err := ParseTLE(line1, line2)
	require.NoError(t, err)
	assert.Equal(t, tle.Checksum1, reparsed.Checksum1)
	assert.Equal(t, tle.Checksum2, reparsed.Checksum2)
}

func TestOMMToTLE_CalculatorAgreement(t *testing.T) {
	// The Sentinel-2A OMM mirrors its TLE; both routes must agree on the
	// derived quantities to the precision the TLE format carries.
	omms, err := ParseOMMs([]byte(ommJSONExample))
	require.NoError(t, err)

	fromOMM, err := omms[1].ToTLE()
	require.NoError(t, err)
	fromLines, err := ParseTLE(sentinel2aLine1, sentinel2aLine2)
	require.NoError(t, err)

	aOMM, err := fromOMM.SemiMajorAxis()
	require.NoError(t, err)
	aLines, err := fromLines.SemiMajorAxis()
	require.NoError(t, err)
	assert.InDelta(t, aLines, aOMM, 0.001)

	rOMM, err := fromOMM.NodeRotationRate()
	require.NoError(t, err)
	rLines, err := fromLines.NodeRotationRate()
	require.NoError(t, err)
	assert.InDelta(t, rLines, rOMM, 1e-6)
}

func TestOMMToTLE_Rejections(t *testing.T) {
	base := OMM{
		ObjectName:         "TEST",
		ObjectID:           "2015-028A",
		EpochStr:           "2020-06-12T00:00:00Z",
		MeanMotion:         14.3,
		Eccentricity:       0.001,
		Inclination:        98.5,
		ClassificationType: "U",
		NoradCatID:         40697,
	}

	tests := []struct {
		name   string
		mutate func(*OMM)
	}{
		{"eccentricity out of range", func(o *OMM) { o.Eccentricity = 1.0 }},
		{"inclination out of range", func(o *OMM) { o.Inclination = 181 }},
		{"non-positive mean motion", func(o *OMM) { o.MeanMotion = 0 }},
		{"unknown classification", func(o *OMM) { o.ClassificationType = "X" }},
		{"malformed object id", func(o *OMM) { o.ObjectID = "2015028A" }},
		{"malformed epoch", func(o *OMM) { o.EpochStr = "June 12, 2020" }},
		{"epoch before the TLE window", func(o *OMM) { o.EpochStr = "1950-01-01T00:00:00Z" }},
		{"catalog number too wide", func(o *OMM) { o.NoradCatID = 123456 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := base
			tt.mutate(&o)
			_, err := o.ToTLE()
			require.Error(t, err)
		})
	}
}
