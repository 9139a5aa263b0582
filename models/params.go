package models

import "math"

// DefaultSimulationParams возвращает параметры симуляции по умолчанию.
func DefaultSimulationParams() SimulationParams {
	return SimulationParams{
		InputVoltage: DefaultInputVoltage,
		MaxCurrent:   DefaultMaxCurrent,
		PulleySize:   DefaultPulleySize,
		Acceleration: DefaultAcceleration,
		ToolheadMass: DefaultToolheadMass,
		BackEMFMode:  BackEMFElectrical,
	}
}

// WithDefaults подставляет значения из defaults вместо отсутствующих,
// неположительных или нечисловых полей.
func (p SimulationParams) WithDefaults(defaults SimulationParams) SimulationParams {
	p.InputVoltage = positiveOr(p.InputVoltage, defaults.InputVoltage)
	p.MaxCurrent = positiveOr(p.MaxCurrent, defaults.MaxCurrent)
	p.PulleySize = positiveOr(p.PulleySize, defaults.PulleySize)
	p.Acceleration = positiveOr(p.Acceleration, defaults.Acceleration)
	p.ToolheadMass = positiveOr(p.ToolheadMass, defaults.ToolheadMass)
	if p.BackEMFMode == "" {
		p.BackEMFMode = defaults.BackEMFMode
	}
	return p
}

// ForMotor применяет переопределения мотора поверх общих параметров.
func (p SimulationParams) ForMotor(m MotorSpec) SimulationParams {
	if m.Overrides == nil {
		return p
	}
	if v := m.Overrides.InputVoltage; v != nil {
		p.InputVoltage = positiveOr(*v, p.InputVoltage)
	}
	if v := m.Overrides.MaxCurrent; v != nil {
		p.MaxCurrent = positiveOr(*v, p.MaxCurrent)
	}
	if v := m.Overrides.PulleySize; v != nil {
		p.PulleySize = positiveOr(*v, p.PulleySize)
	}
	return p
}

func positiveOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fallback
	}
	return v
}
