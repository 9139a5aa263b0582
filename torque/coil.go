package torque

import (
	"math"

	"github.com/iwtcode/stepperTorque/models"
)

// 100·√2: перевод удерживающего момента (Н·см) в амплитуду одной катушки.
const coilTorqueDivisor = 100 * math.Sqrt2

// AvailableCoilTorque оценивает момент (Н·см), который мотор способен развить
// на линейной скорости speed (мм/с) при заданных параметрах драйвера.
// Используется однокатушечное приближение: реактивное и активное сопротивления
// складываются скалярно.
func AvailableCoilTorque(motor models.MotorSpec, drive models.DriveParameters, speed float64) float64 {
	return availableCoilTorque(ElectricalBackEMF{}, motor, drive, speed)
}

func availableCoilTorque(emf BackEMF, motor models.MotorSpec, drive models.DriveParameters, speed float64) float64 {
	stepsPerRev := 360 / motor.StepAngleDeg
	fCoil := speed * (stepsPerRev / 4)
	xCoil := 2 * math.Pi * fCoil * (motor.InductanceMH / 1000)

	zCoil := xCoil + motor.ResistanceOhms
	if zCoil <= 0 {
		return 0
	}

	vGen := 2 * math.Pi * emf.Frequency(speed, fCoil) * (motor.TorqueNCm / coilTorqueDivisor / motor.RatedCurrentA)

	var vAvail float64
	if drive.InputVoltage > vGen {
		vAvail = drive.InputVoltage - vGen
	}

	iAvail := vAvail / zCoil
	iActual := iAvail
	if iAvail > drive.MaxCurrent {
		iActual = drive.MaxCurrent
	}

	torquePercent := iActual / motor.RatedCurrentA
	t1Coil := torquePercent * motor.TorqueNCm / coilTorqueDivisor

	return nonNegative(t1Coil * 100)
}

// nonNegative отбрасывает отрицательные и нечисловые значения.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
