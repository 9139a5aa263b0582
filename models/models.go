package models

// Значения параметров симуляции по умолчанию.
const (
	DefaultInputVoltage = 12.0
	DefaultMaxCurrent   = 1.5
	DefaultPulleySize   = 20.0
	DefaultAcceleration = 500.0
	DefaultToolheadMass = 1.0
)

// Режимы расчета противо-ЭДС.
const (
	BackEMFElectrical = "electrical"
	BackEMFShaft      = "shaft"
)

// MotorOverrides содержит необязательные параметры драйвера для конкретного мотора.
type MotorOverrides struct {
	InputVoltage *float64 `json:"inputVoltage,omitempty"`
	MaxCurrent   *float64 `json:"maxCurrent,omitempty"`
	PulleySize   *float64 `json:"pulleySize,omitempty"`
}

// MotorSpec описывает шаговый мотор из каталога. Идентичность определяется BrandModel.
type MotorSpec struct {
	BrandModel       string          `json:"brandModel"`
	StepAngleDeg     float64         `json:"stepAngleDeg"`
	RatedCurrentA    float64         `json:"ratedCurrentA"`
	TorqueNCm        float64         `json:"torqueNCm"`
	InductanceMH     float64         `json:"inductanceMH"`
	ResistanceOhms   float64         `json:"resistanceOhms"`
	RotorInertiaGCm2 *float64        `json:"rotorInertiaGCm2,omitempty"`
	Nema             *int            `json:"nema,omitempty"`
	BodyLengthMm     *float64        `json:"bodyLengthMm,omitempty"`
	Overrides        *MotorOverrides `json:"overrides,omitempty"`
}

// DriveParameters содержит электрические параметры драйвера.
type DriveParameters struct {
	InputVoltage float64 `json:"inputVoltage"`
	MaxCurrent   float64 `json:"maxCurrent"`
}

// MechanicalParameters содержит параметры механики оси.
type MechanicalParameters struct {
	PulleySize   float64 `json:"pulleySize"`
	Acceleration float64 `json:"acceleration"`
	ToolheadMass float64 `json:"toolheadMass"`
}

// SimulationParams содержит полный набор параметров одной симуляции.
type SimulationParams struct {
	InputVoltage float64 `json:"inputVoltage"`
	MaxCurrent   float64 `json:"maxCurrent"`
	PulleySize   float64 `json:"pulleySize"`
	Acceleration float64 `json:"acceleration"`
	ToolheadMass float64 `json:"toolheadMass"`
	BackEMFMode  string  `json:"backEmfMode,omitempty"`
}

// Drive возвращает электрическую часть параметров.
func (p SimulationParams) Drive() DriveParameters {
	return DriveParameters{InputVoltage: p.InputVoltage, MaxCurrent: p.MaxCurrent}
}

// Mechanical возвращает механическую часть параметров.
func (p SimulationParams) Mechanical() MechanicalParameters {
	return MechanicalParameters{
		PulleySize:   p.PulleySize,
		Acceleration: p.Acceleration,
		ToolheadMass: p.ToolheadMass,
	}
}

// CurvePoint - пара (скорость, момент).
type CurvePoint struct {
	Speed  float64 `json:"speed"`
	Torque float64 `json:"torque"`
}

// MotorCurve содержит кривую доступного момента одного мотора.
type MotorCurve struct {
	BrandModel string    `json:"brandModel"`
	Label      string    `json:"label"`
	Torque     []float64 `json:"torque"`
}

// Points собирает кривую в виде пар, выровненных по переданным скоростям.
func (c MotorCurve) Points(speeds []float64) []CurvePoint {
	n := len(c.Torque)
	if len(speeds) < n {
		n = len(speeds)
	}
	points := make([]CurvePoint, n)
	for i := 0; i < n; i++ {
		points[i] = CurvePoint{Speed: speeds[i], Torque: c.Torque[i]}
	}
	return points
}

// LoadCurve - постоянная линия момента, требуемого для разгона массы каретки.
type LoadCurve struct {
	Label  string    `json:"label"`
	Torque []float64 `json:"torque"`
}

// CurveSet - результат построения кривых для набора моторов.
type CurveSet struct {
	Speeds         []float64        `json:"speeds"`
	Labels         []string         `json:"labels"`
	Motors         []MotorCurve     `json:"motors"`
	RequiredTorque *LoadCurve       `json:"requiredTorque,omitempty"`
	Excluded       []string         `json:"excluded,omitempty"`
	Params         SimulationParams `json:"params"`
}

// IsEmpty сообщает, что в результате нет ни одной серии.
func (s *CurveSet) IsEmpty() bool {
	return s == nil || (len(s.Motors) == 0 && s.RequiredTorque == nil)
}
