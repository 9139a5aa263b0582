package catalog

import (
	"math"
	"testing"

	"github.com/iwtcode/stepperTorque/models"
	apperrors "github.com/iwtcode/stepperTorque/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func motor(name string) models.MotorSpec {
	return models.MotorSpec{
		BrandModel:     name,
		StepAngleDeg:   1.8,
		RatedCurrentA:  1.5,
		TorqueNCm:      40,
		InductanceMH:   3,
		ResistanceOhms: 1.5,
	}
}

func TestCatalogFind(t *testing.T) {
	c, err := New(motor("LDO - 42STH48"), motor("Moons - MS17HD6P420I"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	m, err := c.Find("Moons - MS17HD6P420I")
	require.NoError(t, err)
	assert.Equal(t, "Moons - MS17HD6P420I", m.BrandModel)

	_, err = c.Find("missing")
	assert.ErrorIs(t, err, apperrors.ErrMotorNotFound)
}

func TestCatalogRejectsDuplicatesAndInvalid(t *testing.T) {
	_, err := New(motor("a"), motor("a"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidMotor)

	bad := motor("b")
	bad.RatedCurrentA = math.NaN()
	_, err = New(bad)
	assert.ErrorIs(t, err, apperrors.ErrInvalidMotor)
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	c, err := New(motor("a"))
	require.NoError(t, err)

	all := c.All()
	all[0].BrandModel = "mutated"

	m, err := c.Find("a")
	require.NoError(t, err)
	assert.Equal(t, "a", m.BrandModel)
}

func TestSelectionNoDuplicates(t *testing.T) {
	s := NewSelection()
	require.NoError(t, s.Add(motor("a")))
	require.NoError(t, s.Add(motor("b")))

	err := s.Add(motor("a"))
	require.ErrorIs(t, err, apperrors.ErrDuplicateMotor)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("b"))
}

func TestSelectionRemove(t *testing.T) {
	s := NewSelection()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, s.Add(motor(name)))
	}

	removed, err := s.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "b", removed.BrandModel)

	names := []string{}
	for _, m := range s.Motors() {
		names = append(names, m.BrandModel)
	}
	assert.Equal(t, []string{"a", "c"}, names)

	_, err = s.Remove(5)
	assert.ErrorIs(t, err, apperrors.ErrMotorNotFound)
	_, err = s.Remove(-1)
	assert.ErrorIs(t, err, apperrors.ErrMotorNotFound)
}

func TestSelectionRejectsInvalidMotor(t *testing.T) {
	bad := motor("x")
	bad.StepAngleDeg = 0
	assert.ErrorIs(t, NewSelection().Add(bad), apperrors.ErrInvalidMotor)
}
