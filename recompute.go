package stepper

import (
	"context"
	"time"

	"github.com/iwtcode/stepperTorque/models"
)

// RecomputeResult содержит кривые, построенные одним отложенным пересчетом.
type RecomputeResult struct {
	Curves    *models.CurveSet
	Timestamp time.Time
	Elapsed   time.Duration
}

// StartRecompute запускает фоновый пересчет кривых. После каждого изменения
// набора моторов или параметров пересчет откладывается на delay; серия
// быстрых изменений дает один результат. При delay <= 0 используется
// Config.RecomputeDelay. Канал закрывается при отмене контекста.
// Клиент поддерживает одного подписчика.
func (c *Client) StartRecompute(ctx context.Context, delay time.Duration) <-chan RecomputeResult {
	if delay <= 0 {
		delay = c.config.RecomputeDelay
	}
	if delay <= 0 {
		delay = 700 * time.Millisecond
	}

	resultsChan := make(chan RecomputeResult)

	go func() {
		defer close(resultsChan)

		timer := time.NewTimer(delay)
		timer.Stop()
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				c.logger.Debug("Пересчет остановлен из-за отмены контекста.")
				return
			case <-c.changes:
				timer.Reset(delay)
			case <-timer.C:
				start := time.Now()
				curves := c.Simulate()
				result := RecomputeResult{Curves: curves, Timestamp: start.UTC(), Elapsed: time.Since(start)}
				select {
				case resultsChan <- result:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return resultsChan
}
