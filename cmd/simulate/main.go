package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	stepper "github.com/iwtcode/stepperTorque"
	"github.com/iwtcode/stepperTorque/catalog"
	"github.com/iwtcode/stepperTorque/models"
	"github.com/joho/godotenv"
)

// request - входной файл симуляции.
type request struct {
	Motors []models.MotorSpec       `json:"motors"`
	Params *models.SimulationParams `json:"params,omitempty"`
	Sweep  *models.SpeedSweep       `json:"sweep,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON файл запроса ({motors, params, sweep}); '-' читает stdin")
	catalogPath := flag.String("catalog", "", "JSON файл с каталогом моторов")
	selectNames := flag.String("select", "", "BrandModel моторов из каталога через ';'")
	filter := flag.String("filter", "", "вывести моторы каталога, содержащие подстроку, и выйти")
	flag.Parse()

	// 1) Загрузка конфигурации
	if err := godotenv.Load("./.env"); err != nil {
		log.Printf("Warning: Could not load .env file. Using default values or environment variables: %v", err)
	}
	cfg := stepper.Load()

	// 2) Каталог
	var cat *catalog.Catalog
	if *catalogPath != "" {
		f, err := os.Open(*catalogPath)
		if err != nil {
			log.Fatalf("Не удалось открыть каталог: %v", err)
		}
		var res catalog.ImportResult
		cat, res, err = catalog.LoadJSON(f)
		f.Close()
		if err != nil {
			log.Fatalf("Ошибка чтения каталога: %v", err)
		}
		log.Printf("Каталог загружен: добавлено %d, пропущено %d", res.Added, res.Skipped)
	}

	if *filter != "" {
		if cat == nil {
			log.Fatal("Для -filter нужен -catalog")
		}
		printAsJSON("Filter", cat.Filter(*filter))
		return
	}

	// 3) Запрос
	req, err := readRequest(*inputPath)
	if err != nil {
		log.Fatalf("Ошибка чтения запроса: %v", err)
	}
	if req.Sweep != nil {
		cfg.Sweep = *req.Sweep
	}

	// Логи в stderr, чтобы stdout содержал только JSON
	logger := stepper.NewLogger(cfg.LogLevel)
	if cfg.LogLevel != "off" && cfg.LogLevel != "none" {
		logger.SetOutput(os.Stderr)
	}

	client, err := stepper.NewWithLogger(cfg, logger)
	if err != nil {
		log.Fatalf("Ошибка создания клиента: %v", err)
	}
	if req.Params != nil {
		if err := client.SetParameters(*req.Params); err != nil {
			log.Fatalf("Неверные параметры симуляции: %v", err)
		}
	}

	for _, name := range splitNames(*selectNames) {
		if cat == nil {
			log.Fatal("Для -select нужен -catalog")
		}
		if err := client.SelectFromCatalog(cat, name); err != nil {
			log.Printf("Предупреждение: %v", err)
		}
	}
	for _, m := range req.Motors {
		if err := client.AddMotor(m); err != nil {
			log.Printf("Предупреждение: %v", err)
		}
	}

	// 4) Расчет
	printAsJSON("CurveSet", client.Simulate())
}

func readRequest(path string) (request, error) {
	var req request
	if path == "" {
		return req, nil
	}

	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return req, err
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode request: %w", err)
	}
	return req, nil
}

func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ";") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// printAsJSON форматирует данные в JSON и выводит в stdout
func printAsJSON(name string, data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Printf("Ошибка маршалинга JSON для %s: %v", name, err)
		return
	}
	fmt.Println(string(jsonData))
}
