package interfaces

import (
	"github.com/iwtcode/stepperTorque/internal/domain/models"
	sim "github.com/iwtcode/stepperTorque/models"
)

// Usecases - это агрегирующий интерфейс для всех use cases
type Usecases interface {
	Simulate(req models.SimulateRequest) (*sim.CurveSet, error)
	CreateSession(req models.CreateSessionRequest) (*models.SessionInfo, error)
	GetSession(sessionID string) (*models.SessionInfo, error)
	GetAllSessions() []*models.SessionInfo
	DeleteSession(sessionID string) error
	AddMotor(sessionID string, motor sim.MotorSpec) (*models.SessionInfo, error)
	RemoveMotor(sessionID string, index int) (*models.SessionInfo, error)
	SetParameters(sessionID string, params sim.SimulationParams) (*models.SessionInfo, error)
	SessionCurve(sessionID string) (*sim.CurveSet, error)
}
