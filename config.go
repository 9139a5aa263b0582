package stepper

import (
	"math"
	"os"
	"strconv"
	"time"

	"github.com/iwtcode/stepperTorque/models"
)

// Config хранит модель конфигурации библиотеки
type Config struct {
	LogLevel       string
	Defaults       models.SimulationParams
	Sweep          models.SpeedSweep
	RecomputeDelay time.Duration
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	backEMF := os.Getenv("STEPPER_BACK_EMF_MODE")
	if backEMF == "" {
		backEMF = models.BackEMFElectrical
	}

	delayMs := getEnvAsFloat("STEPPER_RECOMPUTE_DELAY_MS", 700)

	return &Config{
		LogLevel: logLevel,
		Defaults: models.SimulationParams{
			InputVoltage: getEnvAsFloat("STEPPER_INPUT_VOLTAGE", models.DefaultInputVoltage),
			MaxCurrent:   getEnvAsFloat("STEPPER_MAX_CURRENT", models.DefaultMaxCurrent),
			PulleySize:   getEnvAsFloat("STEPPER_PULLEY_SIZE", models.DefaultPulleySize),
			Acceleration: getEnvAsFloat("STEPPER_ACCELERATION", models.DefaultAcceleration),
			ToolheadMass: getEnvAsFloat("STEPPER_TOOLHEAD_MASS", models.DefaultToolheadMass),
			BackEMFMode:  backEMF,
		},
		Sweep: models.SpeedSweep{
			MaxSpeed: getEnvAsFloat("STEPPER_MAX_SPEED", models.DefaultMaxSpeed),
			Step:     getEnvAsFloat("STEPPER_SPEED_STEP", models.DefaultSpeedStep),
		},
		RecomputeDelay: time.Duration(delayMs * float64(time.Millisecond)),
	}
}

// getEnvAsFloat возвращает положительное число из окружения или значение по умолчанию.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return defaultValue
	}
	return value
}
