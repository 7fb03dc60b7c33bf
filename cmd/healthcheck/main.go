package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pitchlab/matchdb/internal/config"
	"github.com/pitchlab/matchdb/internal/database"
	"github.com/pitchlab/matchdb/internal/services"
	"github.com/pitchlab/matchdb/internal/utils"
)

// Standalone health probe for container HEALTHCHECK. Checks the database and
// that the API listener is accepting connections, then reports JSON on stdout.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	result := services.HealthCheck(cfg, db)

	// The probe runs inside the service container, so the listener is local
	if err := utils.PingPort("127.0.0.1", cfg.Port, 1500*time.Millisecond); err != nil {
		result.Status = "unhealthy"
		result.Details["listener_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("API listener unreachable: %v", err)
		}
	} else {
		result.Details["listener"] = "ok"
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
