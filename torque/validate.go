package torque

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwtcode/stepperTorque/models"
	apperrors "github.com/iwtcode/stepperTorque/pkg/errors"
)

// ValidateMotor проверяет запись мотора на границе (каталог, форма, API).
func ValidateMotor(m models.MotorSpec) error {
	if strings.TrimSpace(m.BrandModel) == "" {
		return fmt.Errorf("%w: brandModel is required", apperrors.ErrInvalidMotor)
	}
	if err := checkNumeric(m); err != nil {
		return fmt.Errorf("%w: %q: %v", apperrors.ErrInvalidMotor, m.BrandModel, err)
	}
	if m.TorqueNCm < 0 || m.InductanceMH < 0 || m.ResistanceOhms < 0 {
		return fmt.Errorf("%w: %q: negative electrical or torque value", apperrors.ErrInvalidMotor, m.BrandModel)
	}
	if m.RotorInertiaGCm2 != nil && *m.RotorInertiaGCm2 < 0 {
		return fmt.Errorf("%w: %q: negative rotor inertia", apperrors.ErrInvalidMotor, m.BrandModel)
	}
	if m.BodyLengthMm != nil && (!isFinite(*m.BodyLengthMm) || *m.BodyLengthMm < 0) {
		return fmt.Errorf("%w: %q: invalid body length", apperrors.ErrInvalidMotor, m.BrandModel)
	}
	if m.Nema != nil && *m.Nema <= 0 {
		return fmt.Errorf("%w: %q: invalid NEMA size", apperrors.ErrInvalidMotor, m.BrandModel)
	}
	return nil
}

// ValidateParams проверяет параметры симуляции. Нулевые поля считаются
// отсутствующими и позже заменяются значениями по умолчанию.
func ValidateParams(p models.SimulationParams) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"inputVoltage", p.InputVoltage},
		{"maxCurrent", p.MaxCurrent},
		{"pulleySize", p.PulleySize},
		{"acceleration", p.Acceleration},
		{"toolheadMass", p.ToolheadMass},
	}
	for _, f := range fields {
		if !isFinite(f.value) || f.value < 0 {
			return fmt.Errorf("%w: %s must be a positive number", apperrors.ErrInvalidParameters, f.name)
		}
	}
	if !IsKnownBackEMFMode(p.BackEMFMode) {
		return fmt.Errorf("%w: unknown back-EMF mode %q", apperrors.ErrInvalidParameters, p.BackEMFMode)
	}
	return nil
}

// MaxSweepPoints ограничивает размер развертки, запрошенной извне.
const MaxSweepPoints = models.MaxSweepPoints

// ValidateSweep проверяет развертку скорости. Нулевые поля означают значения по умолчанию.
func ValidateSweep(s models.SpeedSweep) error {
	if !isFinite(s.MaxSpeed) || !isFinite(s.Step) || s.MaxSpeed < 0 || s.Step < 0 {
		return fmt.Errorf("%w: sweep bounds must be positive numbers", apperrors.ErrInvalidParameters)
	}
	n := s.Len()
	if !isFinite(n) || n > MaxSweepPoints {
		return fmt.Errorf("%w: sweep has %g points, limit is %d", apperrors.ErrInvalidParameters, n, MaxSweepPoints)
	}
	return nil
}

// checkNumeric отсекает моторы, на которых формулы дают NaN или деление на ноль.
func checkNumeric(m models.MotorSpec) error {
	required := []struct {
		name  string
		value float64
	}{
		{"stepAngleDeg", m.StepAngleDeg},
		{"ratedCurrentA", m.RatedCurrentA},
		{"torqueNCm", m.TorqueNCm},
		{"inductanceMH", m.InductanceMH},
		{"resistanceOhms", m.ResistanceOhms},
	}
	for _, f := range required {
		if !isFinite(f.value) {
			return fmt.Errorf("%s is not a finite number", f.name)
		}
	}
	if m.StepAngleDeg <= 0 {
		return fmt.Errorf("stepAngleDeg must be positive")
	}
	if m.RatedCurrentA <= 0 {
		return fmt.Errorf("ratedCurrentA must be positive")
	}
	if m.RotorInertiaGCm2 != nil && !isFinite(*m.RotorInertiaGCm2) {
		return fmt.Errorf("rotorInertiaGCm2 is not a finite number")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
