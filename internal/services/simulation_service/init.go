package simulation_service

import (
	"time"

	stepper "github.com/iwtcode/stepperTorque"
	"github.com/iwtcode/stepperTorque/internal/config"
	"github.com/iwtcode/stepperTorque/internal/domain/models"
	"github.com/iwtcode/stepperTorque/internal/interfaces"
	"github.com/iwtcode/stepperTorque/internal/middleware/logging"
	"github.com/iwtcode/stepperTorque/internal/observability"
	sim "github.com/iwtcode/stepperTorque/models"
	"github.com/iwtcode/stepperTorque/torque"
)

type simulationService struct {
	cfg          *stepper.Config
	sessionMgr   *SessionManager
	recomputeMgr *RecomputeManager
	metrics      *observability.SimulationCollector
	logger       *logging.Logger
}

func NewSimulationService(cfg *config.AppConfig, producer interfaces.KafkaService, metrics *observability.SimulationCollector, logger *logging.Logger) interfaces.SimulationService {
	recomputeManager := NewRecomputeManager(producer, metrics, cfg.Simulation.RecomputeDelay, logger)
	sessionManager := NewSessionManager(cfg.Simulation, recomputeManager, metrics, logger)

	return &simulationService{
		cfg:          cfg.Simulation,
		sessionMgr:   sessionManager,
		recomputeMgr: recomputeManager,
		metrics:      metrics,
		logger:       logger.WithPrefix("SIMULATOR"),
	}
}

// Simulate строит кривые для переданного набора моторов без создания сессии.
func (s *simulationService) Simulate(req models.SimulateRequest) (*sim.CurveSet, error) {
	params := s.cfg.Defaults
	if req.Params != nil {
		if err := torque.ValidateParams(*req.Params); err != nil {
			return nil, err
		}
		params = req.Params.WithDefaults(s.cfg.Defaults)
	}

	sweep := s.cfg.Sweep
	if req.Sweep != nil {
		if err := torque.ValidateSweep(*req.Sweep); err != nil {
			return nil, err
		}
		sweep = *req.Sweep
	}

	start := time.Now()
	set := torque.BuildTorqueCurve(req.Motors, params, sweep)
	s.metrics.ObserveBuild("request", len(set.Excluded), time.Since(start))

	for _, name := range set.Excluded {
		s.logger.Warn("Motor has invalid data, skipping", "brand_model", name)
	}
	return set, nil
}

// --- Реализация методов интерфейса SimulationService ---

func (s *simulationService) CreateSession(req models.CreateSessionRequest) (*models.SessionInfo, error) {
	return s.sessionMgr.CreateSession(req)
}

func (s *simulationService) GetSession(sessionID string) (*models.SessionInfo, error) {
	return s.sessionMgr.GetSession(sessionID)
}

func (s *simulationService) GetAllSessions() []*models.SessionInfo {
	return s.sessionMgr.GetAllSessions()
}

func (s *simulationService) DeleteSession(sessionID string) error {
	return s.sessionMgr.DeleteSession(sessionID)
}

func (s *simulationService) AddMotor(sessionID string, motor sim.MotorSpec) (*models.SessionInfo, error) {
	return s.sessionMgr.AddMotor(sessionID, motor)
}

func (s *simulationService) RemoveMotor(sessionID string, index int) (*models.SessionInfo, error) {
	return s.sessionMgr.RemoveMotor(sessionID, index)
}

func (s *simulationService) SetParameters(sessionID string, params sim.SimulationParams) (*models.SessionInfo, error) {
	return s.sessionMgr.SetParameters(sessionID, params)
}

func (s *simulationService) SessionCurve(sessionID string) (*sim.CurveSet, error) {
	return s.sessionMgr.SessionCurve(sessionID)
}

func (s *simulationService) IsRecomputeActive(sessionID string) bool {
	return s.recomputeMgr.IsRecomputeActive(sessionID)
}

func (s *simulationService) StopAll() {
	s.recomputeMgr.StopAll()
}
