package torque

import (
	"math"
	"testing"

	"github.com/iwtcode/stepperTorque/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceMotor() models.MotorSpec {
	return models.MotorSpec{
		BrandModel:     "Reference - 17HS4401",
		StepAngleDeg:   1.8,
		RatedCurrentA:  1.5,
		TorqueNCm:      40,
		InductanceMH:   3,
		ResistanceOhms: 1.5,
	}
}

func referenceDrive() models.DriveParameters {
	return models.DriveParameters{InputVoltage: 12, MaxCurrent: 1.5}
}

func TestAvailableCoilTorqueAtStandstill(t *testing.T) {
	got := AvailableCoilTorque(referenceMotor(), referenceDrive(), 0)
	require.InDelta(t, 40/math.Sqrt2, got, 1e-9)
	require.InDelta(t, 28.28, got, 0.01)
}

func TestAvailableCoilTorqueCollapsesAtHighSpeed(t *testing.T) {
	got := AvailableCoilTorque(referenceMotor(), referenceDrive(), 500)
	require.InDelta(t, 0, got, 1e-9)
}

func TestAvailableCoilTorqueNonNegativeAndFinite(t *testing.T) {
	motors := []models.MotorSpec{
		referenceMotor(),
		{BrandModel: "low-L", StepAngleDeg: 0.9, RatedCurrentA: 2.0, TorqueNCm: 55, InductanceMH: 0.5, ResistanceOhms: 0.8},
		{BrandModel: "high-L", StepAngleDeg: 1.8, RatedCurrentA: 0.4, TorqueNCm: 26, InductanceMH: 36, ResistanceOhms: 30},
		{BrandModel: "zero-R", StepAngleDeg: 1.8, RatedCurrentA: 1.0, TorqueNCm: 10, InductanceMH: 0, ResistanceOhms: 0},
	}
	drives := []models.DriveParameters{
		{InputVoltage: 12, MaxCurrent: 1.5},
		{InputVoltage: 24, MaxCurrent: 2.5},
		{InputVoltage: 48, MaxCurrent: 0.2},
	}

	for _, m := range motors {
		for _, d := range drives {
			for speed := 0.0; speed <= 1000; speed += 0.25 {
				got := AvailableCoilTorque(m, d, speed)
				require.False(t, math.IsNaN(got) || math.IsInf(got, 0), "motor %s speed %v", m.BrandModel, speed)
				require.GreaterOrEqual(t, got, 0.0, "motor %s speed %v", m.BrandModel, speed)
			}
		}
	}
}

func TestAvailableCoilTorqueZeroImpedance(t *testing.T) {
	m := referenceMotor()
	m.InductanceMH = 0
	m.ResistanceOhms = 0

	assert.Equal(t, 0.0, AvailableCoilTorque(m, referenceDrive(), 0))
	assert.Equal(t, 0.0, AvailableCoilTorque(m, referenceDrive(), 10))
}

func TestAvailableCoilTorqueNonIncreasing(t *testing.T) {
	for _, emf := range []BackEMF{ElectricalBackEMF{}, ShaftBackEMF{}} {
		prev := math.Inf(1)
		for speed := 0.0; speed <= 100; speed += 0.01 {
			got := availableCoilTorque(emf, referenceMotor(), referenceDrive(), speed)
			require.LessOrEqual(t, got, prev+1e-12, "%T at speed %v", emf, speed)
			prev = got
		}
		require.Equal(t, 0.0, prev, "%T must reach zero", emf)
	}
}

func TestAvailableCoilTorqueClampedByDriver(t *testing.T) {
	m := referenceMotor()
	weak := models.DriveParameters{InputVoltage: 12, MaxCurrent: 0.75}

	got := AvailableCoilTorque(m, weak, 0)
	require.InDelta(t, 0.5*40/math.Sqrt2, got, 1e-9)
}

func TestShaftBackEMFKeepsTorqueLonger(t *testing.T) {
	m := referenceMotor()
	d := referenceDrive()

	electrical := availableCoilTorque(ElectricalBackEMF{}, m, d, 5)
	shaft := availableCoilTorque(ShaftBackEMF{}, m, d, 5)

	assert.Equal(t, 0.0, electrical)
	assert.Greater(t, shaft, 0.0)
}

func TestGetBackEMFModel(t *testing.T) {
	assert.IsType(t, ElectricalBackEMF{}, GetBackEMFModel(""))
	assert.IsType(t, ElectricalBackEMF{}, GetBackEMFModel("electrical"))
	assert.IsType(t, ShaftBackEMF{}, GetBackEMFModel(" Shaft "))
	assert.IsType(t, ElectricalBackEMF{}, GetBackEMFModel("unknown"))

	assert.True(t, IsKnownBackEMFMode("SHAFT"))
	assert.False(t, IsKnownBackEMFMode("rpm"))
}
