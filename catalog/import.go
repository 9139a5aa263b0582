package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iwtcode/stepperTorque/models"
	"github.com/iwtcode/stepperTorque/torque"
)

// ImportResult - итог импорта списка моторов.
type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// Import добавляет в каталог корректные моторы, которых в нем еще нет.
// Некорректные записи и повторы пропускаются. Каталог остается отсортированным по BrandModel.
func (c *Catalog) Import(motors []models.MotorSpec) ImportResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	var res ImportResult
	for _, m := range motors {
		m.BrandModel = strings.TrimSpace(m.BrandModel)
		if err := torque.ValidateMotor(m); err != nil {
			res.Skipped++
			continue
		}
		if _, exists := c.index[m.BrandModel]; exists {
			res.Skipped++
			continue
		}
		c.index[m.BrandModel] = len(c.motors)
		c.motors = append(c.motors, m)
		res.Added++
	}

	c.sortUnsafe()
	return res
}

// LoadJSON читает каталог из JSON массива моторов.
func LoadJSON(r io.Reader) (*Catalog, ImportResult, error) {
	var motors []models.MotorSpec
	if err := json.NewDecoder(r).Decode(&motors); err != nil {
		return nil, ImportResult{}, fmt.Errorf("failed to decode motor list: %w", err)
	}

	c, _ := New()
	return c, c.Import(motors), nil
}

// ExportJSON записывает каталог в виде JSON массива.
func (c *Catalog) ExportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.All()); err != nil {
		return fmt.Errorf("failed to encode motor list: %w", err)
	}
	return nil
}

// Filter возвращает моторы, в BrandModel которых встречается text (без учета регистра).
// Пустой фильтр ничего не возвращает.
func (c *Catalog) Filter(text string) []models.MotorSpec {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var found []models.MotorSpec
	for _, m := range c.motors {
		if strings.Contains(strings.ToLower(m.BrandModel), needle) {
			found = append(found, m)
		}
	}
	return found
}

func (c *Catalog) sortUnsafe() {
	sort.SliceStable(c.motors, func(i, j int) bool {
		return c.motors[i].BrandModel < c.motors[j].BrandModel
	})
	for i, m := range c.motors {
		c.index[m.BrandModel] = i
	}
}
