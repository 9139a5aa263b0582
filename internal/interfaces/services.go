package interfaces

import (
	"github.com/iwtcode/stepperTorque/internal/domain/models"
	sim "github.com/iwtcode/stepperTorque/models"
)

// SimulationService - это агрегирующий интерфейс для всей бизнес-логики.
type SimulationService interface {
	Simulator
	SessionManager
	RecomputeManager
}

// Simulator определяет контракт однократного расчета кривых.
type Simulator interface {
	Simulate(req models.SimulateRequest) (*sim.CurveSet, error)
}

// SessionManager определяет контракт для управления пулом сессий.
type SessionManager interface {
	CreateSession(req models.CreateSessionRequest) (*models.SessionInfo, error)
	GetSession(sessionID string) (*models.SessionInfo, error)
	GetAllSessions() []*models.SessionInfo
	DeleteSession(sessionID string) error
	AddMotor(sessionID string, motor sim.MotorSpec) (*models.SessionInfo, error)
	RemoveMotor(sessionID string, index int) (*models.SessionInfo, error)
	SetParameters(sessionID string, params sim.SimulationParams) (*models.SessionInfo, error)
	SessionCurve(sessionID string) (*sim.CurveSet, error)
}

// RecomputeManager определяет контракт фонового пересчета кривых сессий.
type RecomputeManager interface {
	IsRecomputeActive(sessionID string) bool
	StopAll()
}
