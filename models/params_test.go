package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaultsFillsAbsentFields(t *testing.T) {
	got := SimulationParams{InputVoltage: 24, MaxCurrent: math.NaN(), PulleySize: -1}.WithDefaults(DefaultSimulationParams())

	assert.Equal(t, 24.0, got.InputVoltage)
	assert.Equal(t, DefaultMaxCurrent, got.MaxCurrent)
	assert.Equal(t, DefaultPulleySize, got.PulleySize)
	assert.Equal(t, DefaultAcceleration, got.Acceleration)
	assert.Equal(t, DefaultToolheadMass, got.ToolheadMass)
	assert.Equal(t, BackEMFElectrical, got.BackEMFMode)
}

func TestForMotorAppliesOverrides(t *testing.T) {
	voltage := 36.0
	pulley := 0.0
	m := MotorSpec{Overrides: &MotorOverrides{InputVoltage: &voltage, PulleySize: &pulley}}

	got := DefaultSimulationParams().ForMotor(m)
	assert.Equal(t, 36.0, got.InputVoltage)
	assert.Equal(t, DefaultMaxCurrent, got.MaxCurrent)
	assert.Equal(t, DefaultPulleySize, got.PulleySize, "non-positive override is ignored")

	assert.Equal(t, DefaultSimulationParams(), DefaultSimulationParams().ForMotor(MotorSpec{}))
}

func TestSplitParams(t *testing.T) {
	p := DefaultSimulationParams()
	assert.Equal(t, DriveParameters{InputVoltage: 12, MaxCurrent: 1.5}, p.Drive())
	assert.Equal(t, MechanicalParameters{PulleySize: 20, Acceleration: 500, ToolheadMass: 1}, p.Mechanical())
}

func TestSpeedSweep(t *testing.T) {
	speeds := DefaultSpeedSweep().Speeds()
	require.Len(t, speeds, 101)
	assert.Equal(t, 0.0, speeds[0])
	assert.Equal(t, 0.5, speeds[1])
	assert.Equal(t, 50.0, speeds[100])

	uneven := SpeedSweep{MaxSpeed: 1, Step: 0.3}.Speeds()
	require.Len(t, uneven, 5)
	assert.InDelta(t, 1.2, uneven[4], 1e-12)

	assert.Len(t, SpeedSweep{MaxSpeed: -5, Step: 0}.Speeds(), 101)
}

func TestSpeedSweepLenDoesNotAllocate(t *testing.T) {
	assert.Equal(t, 101.0, DefaultSpeedSweep().Len())
	assert.Equal(t, 50000001.0, SpeedSweep{MaxSpeed: 5e7, Step: 1}.Len())
	assert.True(t, math.IsInf(SpeedSweep{MaxSpeed: 1e300, Step: 1e-300}.Len(), 1))
}

func TestSpeedSweepOversizedFallsBackToDefault(t *testing.T) {
	assert.Len(t, SpeedSweep{MaxSpeed: 1e300, Step: 1e-300}.Speeds(), 101)
	assert.Len(t, SpeedSweep{MaxSpeed: 5e7, Step: 1}.Speeds(), 101)

	atLimit := SpeedSweep{MaxSpeed: MaxSweepPoints - 1, Step: 1}.Speeds()
	assert.Len(t, atLimit, MaxSweepPoints)
}

func TestCurveSetIsEmpty(t *testing.T) {
	var nilSet *CurveSet
	assert.True(t, nilSet.IsEmpty())
	assert.True(t, (&CurveSet{}).IsEmpty())
	assert.False(t, (&CurveSet{RequiredTorque: &LoadCurve{}}).IsEmpty())
}
