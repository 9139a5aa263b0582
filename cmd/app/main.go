// @title Stepper Torque Service API
// @version 1.0.0
// @description API для расчета кривых момента шаговых моторов и публикации пересчетов в Kafka.
// @host localhost:8082
// @BasePath /api/v1
package main

import "github.com/iwtcode/stepperTorque/internal/app"

func main() {
	// Создаем и запускаем новый экземпляр приложения fx
	app.New().Run()
}
