package usecases

import (
	"github.com/iwtcode/stepperTorque/internal/domain/models"
	"github.com/iwtcode/stepperTorque/internal/interfaces"
	sim "github.com/iwtcode/stepperTorque/models"
)

type Usecase struct {
	simulationSvc interfaces.SimulationService
}

func NewUsecase(simulationSvc interfaces.SimulationService) interfaces.Usecases {
	return &Usecase{
		simulationSvc: simulationSvc,
	}
}

func (u *Usecase) Simulate(req models.SimulateRequest) (*sim.CurveSet, error) {
	return u.simulationSvc.Simulate(req)
}

func (u *Usecase) CreateSession(req models.CreateSessionRequest) (*models.SessionInfo, error) {
	return u.simulationSvc.CreateSession(req)
}

func (u *Usecase) GetSession(sessionID string) (*models.SessionInfo, error) {
	return u.simulationSvc.GetSession(sessionID)
}

func (u *Usecase) GetAllSessions() []*models.SessionInfo {
	return u.simulationSvc.GetAllSessions()
}

func (u *Usecase) DeleteSession(sessionID string) error {
	return u.simulationSvc.DeleteSession(sessionID)
}

func (u *Usecase) AddMotor(sessionID string, motor sim.MotorSpec) (*models.SessionInfo, error) {
	return u.simulationSvc.AddMotor(sessionID, motor)
}

func (u *Usecase) RemoveMotor(sessionID string, index int) (*models.SessionInfo, error) {
	return u.simulationSvc.RemoveMotor(sessionID, index)
}

func (u *Usecase) SetParameters(sessionID string, params sim.SimulationParams) (*models.SessionInfo, error) {
	return u.simulationSvc.SetParameters(sessionID, params)
}

func (u *Usecase) SessionCurve(sessionID string) (*sim.CurveSet, error) {
	return u.simulationSvc.SessionCurve(sessionID)
}
