package simulation_service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	stepper "github.com/iwtcode/stepperTorque"
	"github.com/iwtcode/stepperTorque/internal/domain/models"
	"github.com/iwtcode/stepperTorque/internal/interfaces"
	"github.com/iwtcode/stepperTorque/internal/middleware/logging"
	"github.com/iwtcode/stepperTorque/internal/observability"
)

const publishTimeout = 5 * time.Second

type activeRecompute struct {
	cancel context.CancelFunc
	done   chan struct{}
}

type RecomputeManager struct {
	producer    interfaces.KafkaService
	metrics     *observability.SimulationCollector
	logger      *logging.Logger
	delay       time.Duration
	active      map[string]*activeRecompute
	activeMutex sync.Mutex
}

func NewRecomputeManager(producer interfaces.KafkaService, metrics *observability.SimulationCollector, delay time.Duration, logger *logging.Logger) *RecomputeManager {
	return &RecomputeManager{
		producer: producer,
		metrics:  metrics,
		logger:   logger.WithPrefix("RECOMPUTE"),
		delay:    delay,
		active:   make(map[string]*activeRecompute),
	}
}

func (rm *RecomputeManager) IsRecomputeActive(sessionID string) bool {
	rm.activeMutex.Lock()
	defer rm.activeMutex.Unlock()
	_, exists := rm.active[sessionID]
	return exists
}

// StartRecompute запускает горутину, публикующую результат каждого отложенного пересчета.
func (rm *RecomputeManager) StartRecompute(s *session) {
	rm.activeMutex.Lock()
	defer rm.activeMutex.Unlock()

	if _, exists := rm.active[s.id]; exists {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	rm.active[s.id] = &activeRecompute{cancel: cancel, done: done}

	results := s.client.StartRecompute(ctx, rm.delay)

	go func() {
		defer close(done)
		rm.logger.Debug("Recompute goroutine started", "sessionID", s.id, "delay", rm.delay)
		defer rm.logger.Debug("Recompute goroutine stopped", "sessionID", s.id)

		for result := range results {
			s.recomputed()
			rm.metrics.ObserveBuild("recompute", len(result.Curves.Excluded), result.Elapsed)
			rm.publish(ctx, s.id, result)
		}
	}()
}

func (rm *RecomputeManager) publish(ctx context.Context, sessionID string, result stepper.RecomputeResult) {
	payload, err := json.Marshal(models.CurveMessage{
		SessionID:  sessionID,
		ComputedAt: result.Timestamp,
		Curves:     result.Curves,
	})
	if err != nil {
		rm.logger.Error("Failed to serialize curves for Kafka", "sessionID", sessionID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := rm.producer.Produce(ctx, []byte(sessionID), payload); err != nil {
		rm.logger.Error("Failed to send curves to Kafka", "sessionID", sessionID, "error", err)
		return
	}
	rm.logger.Debug("Curves published", "sessionID", sessionID, "motors", len(result.Curves.Motors))
}

// StopRecompute останавливает пересчет сессии и дожидается завершения горутины.
func (rm *RecomputeManager) StopRecompute(sessionID string) {
	rm.activeMutex.Lock()
	rec, exists := rm.active[sessionID]
	delete(rm.active, sessionID)
	rm.activeMutex.Unlock()

	if !exists {
		return
	}
	rec.cancel()
	<-rec.done
	rm.logger.Info("Recompute stopped", "sessionID", sessionID)
}

// StopAll останавливает пересчет всех сессий.
func (rm *RecomputeManager) StopAll() {
	rm.activeMutex.Lock()
	ids := make([]string, 0, len(rm.active))
	for id := range rm.active {
		ids = append(ids, id)
	}
	rm.activeMutex.Unlock()

	for _, id := range ids {
		rm.StopRecompute(id)
	}
}
