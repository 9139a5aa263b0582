package catalog

import (
	"fmt"
	"sync"

	"github.com/iwtcode/stepperTorque/models"
	apperrors "github.com/iwtcode/stepperTorque/pkg/errors"
	"github.com/iwtcode/stepperTorque/torque"
)

// Catalog - упорядоченный список моторов, принадлежащий вызывающему коду.
type Catalog struct {
	mu     sync.RWMutex
	motors []models.MotorSpec
	index  map[string]int
}

// New создает каталог из переданных моторов. Каждая запись проверяется,
// повторяющийся BrandModel считается ошибкой.
func New(motors ...models.MotorSpec) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(motors))}
	for _, m := range motors {
		if err := torque.ValidateMotor(m); err != nil {
			return nil, err
		}
		if _, exists := c.index[m.BrandModel]; exists {
			return nil, fmt.Errorf("%w: %q appears twice in catalog", apperrors.ErrInvalidMotor, m.BrandModel)
		}
		c.index[m.BrandModel] = len(c.motors)
		c.motors = append(c.motors, m)
	}
	return c, nil
}

// Find возвращает мотор по BrandModel.
func (c *Catalog) Find(brandModel string) (models.MotorSpec, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[brandModel]
	if !ok {
		return models.MotorSpec{}, fmt.Errorf("%w: %q", apperrors.ErrMotorNotFound, brandModel)
	}
	return c.motors[i], nil
}

// All возвращает копию списка моторов.
func (c *Catalog) All() []models.MotorSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.MotorSpec(nil), c.motors...)
}

// Len возвращает количество моторов.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.motors)
}
