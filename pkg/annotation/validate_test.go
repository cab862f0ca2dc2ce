package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModeRecord() *Record {
	return &Record{
		PhysicalTypes:    []string{"clb", "ble"},
		PhysicalModes:    []string{"default"},
		PhysicalModeName: "lut_mode",
	}
}

func validPairingRecord() *Record {
	return &Record{
		OperatingTypes: []string{"clb", "ble", "lut4"},
		OperatingModes: []string{"default", "lut_mode"},
		PhysicalTypes:  []string{"clb", "ble", "frac_lut"},
		PhysicalModes:  []string{"default", "physical"},
		PortMappings: []PortMapping{
			{OperatingPort: "in", PhysicalPort: "in_a", Lo: 0, Hi: 4},
		},
	}
}

func TestValidateRecord_ModeDeclaration(t *testing.T) {
	require.NoError(t, ValidateRecord(validModeRecord()))
}

func TestValidateRecord_Pairing(t *testing.T) {
	require.NoError(t, ValidateRecord(validPairingRecord()))
}

func TestValidateRecord_Nil(t *testing.T) {
	assert.Error(t, ValidateRecord(nil))
}

func TestValidateRecord_NeitherSide(t *testing.T) {
	err := ValidateRecord(&Record{PhysicalModeName: "foo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither")
}

func TestValidateRecord_PathArity(t *testing.T) {
	r := validModeRecord()
	r.PhysicalModes = nil // two type names now need one mode name
	err := ValidateRecord(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "physical path")
}

func TestValidateRecord_BadNames(t *testing.T) {
	r := validModeRecord()
	r.PhysicalModeName = "lut mode"
	assert.Error(t, ValidateRecord(r))

	r = validPairingRecord()
	r.OperatingTypes[0] = "9clb"
	assert.Error(t, ValidateRecord(r))
}

func TestValidateRecord_DuplicatePortMapping(t *testing.T) {
	r := validPairingRecord()
	r.PortMappings = append(r.PortMappings, PortMapping{
		OperatingPort: "in", PhysicalPort: "in_b", Lo: -1,
	})
	err := ValidateRecord(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidateRecord_EmptyPinSpan(t *testing.T) {
	r := validPairingRecord()
	r.PortMappings[0].Lo = 4
	r.PortMappings[0].Hi = 4
	assert.Error(t, ValidateRecord(r))
}

func TestValidateRecords_ReportsIndex(t *testing.T) {
	records := []*Record{validModeRecord(), {PhysicalModeName: "x"}}
	err := ValidateRecords(records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}

func TestRecord_ModeTarget(t *testing.T) {
	r := validModeRecord()
	types, modes, ok := r.ModeTarget()
	require.True(t, ok)
	assert.Equal(t, []string{"clb", "ble"}, types)
	assert.Equal(t, []string{"default"}, modes)

	// Operating side wins when both are declared.
	r = validPairingRecord()
	types, _, ok = r.ModeTarget()
	require.True(t, ok)
	assert.Equal(t, "lut4", types[len(types)-1])

	_, _, ok = (&Record{}).ModeTarget()
	assert.False(t, ok)
}

func TestRecord_MappingFor(t *testing.T) {
	r := validPairingRecord()

	pm, ok := r.MappingFor("in")
	require.True(t, ok)
	assert.Equal(t, "in_a", pm.PhysicalPort)
	assert.True(t, pm.Explicit())

	_, ok = r.MappingFor("out")
	assert.False(t, ok)
}
