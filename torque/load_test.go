package torque

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestRequiredTorqueForInertiaWithoutInertia(t *testing.T) {
	for _, accel := range []float64{0, 1, 500, 25000} {
		for _, pulley := range []float64{5, 20, 40} {
			assert.Equal(t, 0.0, RequiredTorqueForInertia(accel, pulley, nil))
		}
	}
}

func TestRequiredTorqueForInertia(t *testing.T) {
	// 500 / 40 * 2π * (54 / 1e7) * 100
	want := 500.0 / 40 * 2 * math.Pi * (54.0 / 1e7) * 100
	got := RequiredTorqueForInertia(500, 20, ptr(54))

	require.InDelta(t, want, got, 1e-12)
	require.InDelta(t, 0.04241, got, 1e-5)
}

func TestRequiredTorqueForInertiaScalesWithAcceleration(t *testing.T) {
	base := RequiredTorqueForInertia(1000, 20, ptr(80))
	double := RequiredTorqueForInertia(2000, 20, ptr(80))
	assert.InDelta(t, 2*base, double, 1e-12)
}

func TestRequiredTorqueForMass(t *testing.T) {
	// 0.5 * 0.001 * 40 / (20π)
	want := 0.5 * 0.001 * 40 / (2 * math.Pi * 10)
	got := RequiredTorqueForMass(1, 500, 20)

	require.InDelta(t, want, got, 1e-15)
}

func TestRequiredTorqueForMassIsLinearInMass(t *testing.T) {
	one := RequiredTorqueForMass(1, 3000, 16)
	ten := RequiredTorqueForMass(10, 3000, 16)
	assert.InDelta(t, 10*one, ten, 1e-12)
	assert.Equal(t, 0.0, RequiredTorqueForMass(0, 3000, 16))
}
