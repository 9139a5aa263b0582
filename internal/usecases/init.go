package usecases

import "github.com/iwtcode/stepperTorque/internal/interfaces"

// UseCases - агрегатор всех use case интерфейсов
type UseCases struct {
	interfaces.Usecases
}

// NewUsecases - конструктор для UseCases
func NewUsecases(
	simulationSvc interfaces.SimulationService,
) interfaces.Usecases {
	return NewUsecase(simulationSvc)
}
