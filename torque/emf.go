package torque

import (
	"strings"

	"github.com/iwtcode/stepperTorque/models"
)

// BackEMF определяет частоту, от которой считается противо-ЭДС мотора.
type BackEMF interface {
	Frequency(speed, coilFrequencyHz float64) float64
}

// ElectricalBackEMF считает противо-ЭДС от электрической частоты катушки.
type ElectricalBackEMF struct{}

func (ElectricalBackEMF) Frequency(_, coilFrequencyHz float64) float64 {
	return coilFrequencyHz
}

// ShaftBackEMF подставляет в формулу саму скорость развертки вместо частоты
// катушки. Режим совместимости со старыми графиками.
type ShaftBackEMF struct{}

func (ShaftBackEMF) Frequency(speed, _ float64) float64 {
	return speed
}

// GetBackEMFModel выбирает реализацию по строке режима.
// Неизвестный или пустой режим дает ElectricalBackEMF.
func GetBackEMFModel(mode string) BackEMF {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case models.BackEMFShaft:
		return ShaftBackEMF{}
	default:
		return ElectricalBackEMF{}
	}
}

// IsKnownBackEMFMode сообщает, поддерживается ли режим.
func IsKnownBackEMFMode(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", models.BackEMFElectrical, models.BackEMFShaft:
		return true
	}
	return false
}
