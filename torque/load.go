package torque

import "math"

// RequiredTorqueForInertia переводит инерцию ротора (г·см²) в момент (Н·см),
// необходимый для разгона с линейным ускорением acceleration (мм/с²)
// через шкив диаметром pulleyDiameter (мм). Без инерции возвращает 0.
func RequiredTorqueForInertia(acceleration, pulleyDiameter float64, rotorInertia *float64) float64 {
	if rotorInertia == nil {
		return 0
	}
	return acceleration / (pulleyDiameter * 2) * 2 * math.Pi * (*rotorInertia / (1000 * math.Pow(100, 2))) * 100
}

// RequiredTorqueForMass возвращает момент (Н·см), требуемый для разгона массы каретки.
// TODO: сверить размерность с F·r: для 1 кг, 500 мм/с² и шкива 20 мм результат
// на несколько порядков меньше 1 Н·см.
func RequiredTorqueForMass(toolheadMass, acceleration, pulleyDiameter float64) float64 {
	accelReq := acceleration / 1000
	massReq := toolheadMass / 1000
	gearRatio := pulleyDiameter * 2
	piCalc := 2 * math.Pi * 10

	return accelReq * massReq * gearRatio / piCalc
}
