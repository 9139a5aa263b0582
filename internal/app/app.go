package app

import (
	"context"
	"net/http"
	"time"

	"github.com/iwtcode/stepperTorque/internal/adapters/handlers"
	"github.com/iwtcode/stepperTorque/internal/config"
	"github.com/iwtcode/stepperTorque/internal/interfaces"
	"github.com/iwtcode/stepperTorque/internal/middleware/logging"
	"github.com/iwtcode/stepperTorque/internal/observability"
	"github.com/iwtcode/stepperTorque/internal/services/kafka"
	"github.com/iwtcode/stepperTorque/internal/services/simulation_service"
	"github.com/iwtcode/stepperTorque/internal/usecases"

	"go.uber.org/fx"
)

// New создает новый экземпляр fx.App
func New() *fx.App {
	return fx.New(
		ConfigModule,
		LoggingModule,
		MetricsModule,
		ProducerModule,
		ServiceModule,
		UsecaseModule,
		HttpServerModule,
		// Invoke-функции для хуков жизненного цикла
		fx.Invoke(InvokeShutdown),
	)
}

// --- Модули FX ---

var ConfigModule = fx.Module("config_module",
	fx.Provide(config.LoadConfiguration),
)

func ProvideLogger(lc fx.Lifecycle, cfg *config.AppConfig) *logging.Logger {
	loggerCfg := &logging.Config{
		Enabled:    cfg.Logging.Enable,
		Level:      cfg.Logging.Level,
		LogsDir:    cfg.Logging.LogsDir,
		SavingDays: uint(cfg.Logging.SavingDays),
	}
	logger := logging.NewLogger(loggerCfg, "StepperTorqueApp")
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return logger.Close()
		},
	})
	return logger
}

var LoggingModule = fx.Module("logging_module",
	fx.Provide(ProvideLogger),
)

// ProvideMetrics регистрирует метрики в глобальном реестре Prometheus.
func ProvideMetrics() (*observability.SimulationCollector, error) {
	return observability.NewSimulationCollector(nil)
}

var MetricsModule = fx.Module("metrics_module",
	fx.Provide(ProvideMetrics),
)

var ProducerModule = fx.Module("producer_module",
	fx.Provide(kafka.NewKafkaProducer),
)

var ServiceModule = fx.Module("service_module",
	fx.Provide(simulation_service.NewSimulationService),
)

var UsecaseModule = fx.Module("usecases_module",
	fx.Provide(usecases.NewUsecases),
)

var HttpServerModule = fx.Module("http_server_module",
	fx.Provide(
		handlers.NewHandler,
		handlers.ProvideRouter,
	),
	fx.Invoke(InvokeHttpServer),
)

// InvokeShutdown останавливает фоновые пересчеты и закрывает продюсер при остановке.
func InvokeShutdown(lc fx.Lifecycle, svc interfaces.SimulationService, producer interfaces.KafkaService, cfg *config.AppConfig, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Kafka.Enable {
				logger.Info("Publishing recomputed curves to Kafka", "broker", cfg.Kafka.Broker, "topic", cfg.Kafka.Topic)
			} else {
				logger.Info("Kafka publishing is disabled")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping background recompute...")
			svc.StopAll()
			if err := producer.Close(); err != nil {
				logger.Error("Failed to close Kafka producer", "error", err)
			}
			return nil
		},
	})
}

// InvokeHttpServer запускает HTTP-сервер.
func InvokeHttpServer(lc fx.Lifecycle, cfg *config.AppConfig, h http.Handler, logger *logging.Logger) {
	serverAddr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP Server is starting", "address", serverAddr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
