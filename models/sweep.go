package models

import "math"

// Развертка скорости по умолчанию: 0..50 мм/с с шагом 0.5 мм/с (101 точка).
const (
	DefaultMaxSpeed  = 50.0
	DefaultSpeedStep = 0.5
)

// MaxSweepPoints - наибольшее число точек развертки.
const MaxSweepPoints = 10001

// SpeedSweep описывает упорядоченную развертку линейной скорости (мм/с).
type SpeedSweep struct {
	MaxSpeed float64 `json:"maxSpeed"`
	Step     float64 `json:"step"`
}

// DefaultSpeedSweep возвращает развертку по умолчанию.
func DefaultSpeedSweep() SpeedSweep {
	return SpeedSweep{MaxSpeed: DefaultMaxSpeed, Step: DefaultSpeedStep}
}

// Len возвращает число точек развертки без ее построения. Результат может
// быть бесконечным или превышать MaxSweepPoints.
func (s SpeedSweep) Len() float64 {
	maxSpeed := positiveOr(s.MaxSpeed, DefaultMaxSpeed)
	step := positiveOr(s.Step, DefaultSpeedStep)
	return math.Ceil(maxSpeed/step) + 1
}

// Speeds генерирует точки развертки от 0 до MaxSpeed включительно.
// Некорректные границы и развертки длиннее MaxSweepPoints заменяются
// разверткой по умолчанию.
func (s SpeedSweep) Speeds() []float64 {
	n := s.Len()
	if math.IsNaN(n) || math.IsInf(n, 0) || n > MaxSweepPoints {
		s = DefaultSpeedSweep()
		n = s.Len()
	}
	step := positiveOr(s.Step, DefaultSpeedStep)

	speeds := make([]float64, int(n))
	for i := range speeds {
		speeds[i] = float64(i) * step
	}
	return speeds
}
