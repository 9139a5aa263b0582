package models

import (
	"time"

	sim "github.com/iwtcode/stepperTorque/models"
)

// SimulateRequest - запрос на однократный расчет без создания сессии.
type SimulateRequest struct {
	Motors []sim.MotorSpec       `json:"motors"`
	Params *sim.SimulationParams `json:"params,omitempty"`
	Sweep  *sim.SpeedSweep       `json:"sweep,omitempty"`
}

// CreateSessionRequest определяет необязательные параметры новой сессии.
type CreateSessionRequest struct {
	Params *sim.SimulationParams `json:"params,omitempty"`
	Motors []sim.MotorSpec       `json:"motors,omitempty"`
}

// SessionInfo представляет активную сессию симуляции.
type SessionInfo struct {
	SessionID  string               `json:"session_id"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	Motors     []sim.MotorSpec      `json:"motors"`
	Params     sim.SimulationParams `json:"params"`
	Recomputes int64                `json:"recomputes"`
}

// CurveMessage - сообщение с пересчитанными кривыми, публикуемое в Kafka.
type CurveMessage struct {
	SessionID  string        `json:"session_id"`
	ComputedAt time.Time     `json:"computed_at"`
	Curves     *sim.CurveSet `json:"curves"`
}
