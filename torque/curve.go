package torque

import (
	"fmt"
	"strconv"

	"github.com/iwtcode/stepperTorque/models"
)

// RequiredTorqueLabel - подпись линии требуемого момента.
const RequiredTorqueLabel = "Required Torque (Toolhead Mass)"

// BuildTorqueCurve строит кривые чистого момента для каждого мотора и
// постоянную линию момента, требуемого для разгона каретки.
//
// Моторы с некорректными числовыми полями не попадают в результат, их имена
// перечислены в CurveSet.Excluded. Пустой список моторов дает пустой CurveSet
// без подписей и без линии нагрузки. Все значения в результате конечны и
// неотрицательны.
func BuildTorqueCurve(motors []models.MotorSpec, params models.SimulationParams, sweep models.SpeedSweep) *models.CurveSet {
	params = params.WithDefaults(models.DefaultSimulationParams())

	set := &models.CurveSet{
		Speeds: []float64{},
		Labels: []string{},
		Motors: []models.MotorCurve{},
		Params: params,
	}
	if len(motors) == 0 {
		return set
	}

	speeds := sweep.Speeds()
	emf := GetBackEMFModel(params.BackEMFMode)

	for i, motor := range motors {
		label := motorLabel(motor, i)
		if err := checkNumeric(motor); err != nil {
			set.Excluded = append(set.Excluded, label)
			continue
		}

		// Переопределения мотора фиксируются один раз на все построение.
		p := params.ForMotor(motor)
		drive := p.Drive()
		inertiaTorque := RequiredTorqueForInertia(p.Acceleration, p.PulleySize, motor.RotorInertiaGCm2)

		values := make([]float64, len(speeds))
		for j, speed := range speeds {
			available := availableCoilTorque(emf, motor, drive, speed)
			values[j] = nonNegative(available - inertiaTorque)
		}

		set.Motors = append(set.Motors, models.MotorCurve{
			BrandModel: motor.BrandModel,
			Label:      label,
			Torque:     values,
		})
	}

	required := RequiredTorqueForMass(params.ToolheadMass, params.Acceleration, params.PulleySize)
	if !isFinite(required) {
		required = 0
	}
	load := make([]float64, len(speeds))
	for i := range load {
		load[i] = required
	}

	set.Speeds = speeds
	set.Labels = SpeedLabels(speeds, params.PulleySize)
	set.RequiredTorque = &models.LoadCurve{Label: RequiredTorqueLabel, Torque: load}
	return set
}

// SpeedLabels масштабирует точки развертки на pulleySize*2 и форматирует их
// в кратчайшую десятичную запись.
func SpeedLabels(speeds []float64, pulleySize float64) []string {
	labels := make([]string, len(speeds))
	for i, speed := range speeds {
		labels[i] = strconv.FormatFloat(speed*(pulleySize*2), 'f', -1, 64)
	}
	return labels
}

func motorLabel(m models.MotorSpec, index int) string {
	if m.BrandModel != "" {
		return m.BrandModel
	}
	return fmt.Sprintf("Motor %d", index+1)
}
