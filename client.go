package stepper

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/iwtcode/stepperTorque/catalog"
	"github.com/iwtcode/stepperTorque/models"
	"github.com/iwtcode/stepperTorque/torque"
	"github.com/sirupsen/logrus"
)

// Client является основной точкой входа для работы с библиотекой.
// Он владеет набором моторов для симуляции и текущими параметрами;
// сам расчет выполняется чистыми функциями пакета torque.
type Client struct {
	config    *Config
	logger    *logrus.Logger
	selection *catalog.Selection

	mu     sync.RWMutex
	params models.SimulationParams

	changes chan struct{}
}

// NewLogger создает логгер по строке уровня ("off" и "none" отключают вывод).
func NewLogger(logLevel string) *logrus.Logger {
	logger := logrus.New()

	if logLevel == "off" || logLevel == "none" {
		logger.SetOutput(io.Discard)
	} else {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		logger.SetLevel(level)
		logger.SetOutput(os.Stdout)
	}

	// Настраиваем форматтер с понятным форматом времени
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return logger
}

// New создает и возвращает новый экземпляр клиента.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	return NewWithLogger(cfg, NewLogger(cfg.LogLevel))
}

// NewWithLogger создает клиента с уже настроенным логгером.
func NewWithLogger(cfg *Config, logger *logrus.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := torque.ValidateParams(cfg.Defaults); err != nil {
		return nil, fmt.Errorf("invalid default parameters: %w", err)
	}
	if err := torque.ValidateSweep(cfg.Sweep); err != nil {
		return nil, fmt.Errorf("invalid speed sweep: %w", err)
	}
	if logger == nil {
		logger = NewLogger(cfg.LogLevel)
	}

	return &Client{
		config:    cfg,
		logger:    logger,
		selection: catalog.NewSelection(),
		params:    cfg.Defaults.WithDefaults(models.DefaultSimulationParams()),
		changes:   make(chan struct{}, 1),
	}, nil
}

// GetLogger возвращает используемый логгер.
func (c *Client) GetLogger() *logrus.Logger {
	return c.logger
}

// AddMotor добавляет мотор в симуляцию.
func (c *Client) AddMotor(m models.MotorSpec) error {
	if err := c.selection.Add(m); err != nil {
		c.logger.WithField("brand_model", m.BrandModel).Debugf("Motor was not added: %v", err)
		return err
	}
	c.logger.WithField("brand_model", m.BrandModel).Info("Motor added to simulation")
	c.notify()
	return nil
}

// SelectFromCatalog добавляет в симуляцию мотор из каталога по BrandModel.
func (c *Client) SelectFromCatalog(cat *catalog.Catalog, brandModel string) error {
	m, err := cat.Find(brandModel)
	if err != nil {
		return err
	}
	return c.AddMotor(m)
}

// RemoveMotor удаляет мотор из симуляции по индексу.
func (c *Client) RemoveMotor(index int) (models.MotorSpec, error) {
	removed, err := c.selection.Remove(index)
	if err != nil {
		return removed, err
	}
	c.logger.WithField("brand_model", removed.BrandModel).Info("Motor removed from simulation")
	c.notify()
	return removed, nil
}

// Motors возвращает моторы, выбранные для симуляции.
func (c *Client) Motors() []models.MotorSpec {
	return c.selection.Motors()
}

// SetParameters заменяет параметры симуляции. Отсутствующие поля берутся из конфигурации.
func (c *Client) SetParameters(p models.SimulationParams) error {
	if err := torque.ValidateParams(p); err != nil {
		return err
	}

	c.mu.Lock()
	c.params = p.WithDefaults(c.config.Defaults)
	c.mu.Unlock()

	c.notify()
	return nil
}

// Parameters возвращает текущие параметры симуляции.
func (c *Client) Parameters() models.SimulationParams {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.params
}

// Simulate строит кривые момента для текущего набора моторов.
func (c *Client) Simulate() *models.CurveSet {
	motors := c.selection.Motors()
	params := c.Parameters()

	if len(motors) == 0 {
		c.logger.Info("Please add at least one motor to the simulation")
	}

	set := torque.BuildTorqueCurve(motors, params, c.config.Sweep)
	for _, name := range set.Excluded {
		c.logger.WithField("brand_model", name).Warn("Motor has invalid data, skipping")
	}

	c.logger.WithFields(logrus.Fields{
		"motors":   len(set.Motors),
		"excluded": len(set.Excluded),
		"points":   len(set.Speeds),
	}).Debug("Simulation finished")

	return set
}

// notify сигнализирует фоновому пересчету об изменении состояния.
func (c *Client) notify() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}
