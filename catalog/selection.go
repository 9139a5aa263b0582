package catalog

import (
	"fmt"
	"sync"

	"github.com/iwtcode/stepperTorque/models"
	apperrors "github.com/iwtcode/stepperTorque/pkg/errors"
	"github.com/iwtcode/stepperTorque/torque"
)

// Selection - упорядоченный набор моторов для симуляции без повторов BrandModel.
type Selection struct {
	mu     sync.RWMutex
	motors []models.MotorSpec
}

// NewSelection создает пустой набор.
func NewSelection() *Selection {
	return &Selection{}
}

// Add добавляет мотор в конец набора.
func (s *Selection) Add(m models.MotorSpec) error {
	if err := torque.ValidateMotor(m); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.motors {
		if existing.BrandModel == m.BrandModel {
			return fmt.Errorf("%w: %q", apperrors.ErrDuplicateMotor, m.BrandModel)
		}
	}
	s.motors = append(s.motors, m)
	return nil
}

// Remove удаляет мотор по индексу и возвращает его.
func (s *Selection) Remove(index int) (models.MotorSpec, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.motors) {
		return models.MotorSpec{}, fmt.Errorf("%w: index %d out of range [0,%d)", apperrors.ErrMotorNotFound, index, len(s.motors))
	}
	removed := s.motors[index]
	s.motors = append(s.motors[:index], s.motors[index+1:]...)
	return removed, nil
}

// Contains сообщает, выбран ли мотор с данным BrandModel.
func (s *Selection) Contains(brandModel string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.motors {
		if m.BrandModel == brandModel {
			return true
		}
	}
	return false
}

// Motors возвращает копию набора.
func (s *Selection) Motors() []models.MotorSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MotorSpec(nil), s.motors...)
}

// Len возвращает размер набора.
func (s *Selection) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.motors)
}
