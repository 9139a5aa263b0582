package simulation_service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	stepper "github.com/iwtcode/stepperTorque"
	"github.com/iwtcode/stepperTorque/internal/domain/models"
	"github.com/iwtcode/stepperTorque/internal/middleware/logging"
	"github.com/iwtcode/stepperTorque/internal/observability"
	sim "github.com/iwtcode/stepperTorque/models"
	apperrors "github.com/iwtcode/stepperTorque/pkg/errors"
)

// RecomputeStarter определяет методы, которые SessionManager может вызывать у RecomputeManager.
type RecomputeStarter interface {
	StartRecompute(s *session)
	StopRecompute(sessionID string)
}

// session - одна пользовательская симуляция со своим набором моторов и параметрами.
type session struct {
	id        string
	client    *stepper.Client
	createdAt time.Time

	mu         sync.Mutex
	updatedAt  time.Time
	recomputes int64
}

func (s *session) touch() {
	s.mu.Lock()
	s.updatedAt = time.Now()
	s.mu.Unlock()
}

func (s *session) recomputed() {
	s.mu.Lock()
	s.recomputes++
	s.mu.Unlock()
}

func (s *session) info() *models.SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.SessionInfo{
		SessionID:  s.id,
		CreatedAt:  s.createdAt,
		UpdatedAt:  s.updatedAt,
		Motors:     s.client.Motors(),
		Params:     s.client.Parameters(),
		Recomputes: s.recomputes,
	}
}

type SessionManager struct {
	mu           sync.RWMutex
	pool         map[string]*session
	cfg          *stepper.Config
	recomputeMgr RecomputeStarter
	metrics      *observability.SimulationCollector
	logger       *logging.Logger
}

func NewSessionManager(cfg *stepper.Config, recomputeMgr RecomputeStarter, metrics *observability.SimulationCollector, logger *logging.Logger) *SessionManager {
	return &SessionManager{
		pool:         make(map[string]*session),
		cfg:          cfg,
		recomputeMgr: recomputeMgr,
		metrics:      metrics,
		logger:       logger.WithPrefix("SESSIONS"),
	}
}

func (sm *SessionManager) CreateSession(req models.CreateSessionRequest) (*models.SessionInfo, error) {
	client, err := stepper.NewWithLogger(sm.cfg, sm.logger.Logrus())
	if err != nil {
		return nil, fmt.Errorf("не удалось создать клиент симуляции: %w", err)
	}

	if req.Params != nil {
		if err := client.SetParameters(*req.Params); err != nil {
			return nil, err
		}
	}
	for _, m := range req.Motors {
		if err := client.AddMotor(m); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	s := &session{
		id:        uuid.New().String(),
		client:    client,
		createdAt: now,
		updatedAt: now,
	}

	sm.mu.Lock()
	sm.pool[s.id] = s
	size := len(sm.pool)
	sm.mu.Unlock()

	sm.metrics.SetActiveSessions(size)
	sm.recomputeMgr.StartRecompute(s)

	sm.logger.Info("Session created successfully", "sessionID", s.id, "motors", len(req.Motors))
	return s.info(), nil
}

func (sm *SessionManager) get(sessionID string) (*session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	s, found := sm.pool[sessionID]
	if !found {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, sessionID)
	}
	return s, nil
}

func (sm *SessionManager) GetSession(sessionID string) (*models.SessionInfo, error) {
	s, err := sm.get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.info(), nil
}

func (sm *SessionManager) GetAllSessions() []*models.SessionInfo {
	sm.mu.RLock()
	sessions := make([]*session, 0, len(sm.pool))
	for _, s := range sm.pool {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	infos := make([]*models.SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, s.info())
	}
	return infos
}

func (sm *SessionManager) DeleteSession(sessionID string) error {
	sm.mu.Lock()
	if _, found := sm.pool[sessionID]; !found {
		sm.mu.Unlock()
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, sessionID)
	}
	delete(sm.pool, sessionID)
	size := len(sm.pool)
	sm.mu.Unlock()

	sm.recomputeMgr.StopRecompute(sessionID)
	sm.metrics.SetActiveSessions(size)

	sm.logger.Info("Session deleted", "sessionID", sessionID)
	return nil
}

func (sm *SessionManager) AddMotor(sessionID string, motor sim.MotorSpec) (*models.SessionInfo, error) {
	s, err := sm.get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.client.AddMotor(motor); err != nil {
		return nil, err
	}
	s.touch()
	return s.info(), nil
}

func (sm *SessionManager) RemoveMotor(sessionID string, index int) (*models.SessionInfo, error) {
	s, err := sm.get(sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.client.RemoveMotor(index); err != nil {
		return nil, err
	}
	s.touch()
	return s.info(), nil
}

func (sm *SessionManager) SetParameters(sessionID string, params sim.SimulationParams) (*models.SessionInfo, error) {
	s, err := sm.get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.client.SetParameters(params); err != nil {
		return nil, err
	}
	s.touch()
	return s.info(), nil
}

func (sm *SessionManager) SessionCurve(sessionID string) (*sim.CurveSet, error) {
	s, err := sm.get(sessionID)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	set := s.client.Simulate()
	sm.metrics.ObserveBuild("session", len(set.Excluded), time.Since(start))
	return set, nil
}
