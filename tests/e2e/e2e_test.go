package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pitchlab/matchdb/internal/config"
	"github.com/pitchlab/matchdb/internal/database"
	"github.com/pitchlab/matchdb/internal/services"
	"github.com/pitchlab/matchdb/internal/types"
	"github.com/pitchlab/matchdb/tests/helpers"
)

// TestE2EWithFullStack tests the entire service stack
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	ctx := context.Background()

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	matchdbHost, _ := tc.MatchDBContainer.Host(ctx)
	matchdbPort, _ := tc.MatchDBContainer.MappedPort(ctx, "3000")
	baseURL := fmt.Sprintf("http://%s:%s", matchdbHost, matchdbPort.Port())

	// Wait a bit for everything to stabilize
	time.Sleep(5 * time.Second)

	// Run E2E tests
	t.Run("HealthCheck", func(t *testing.T) {
		testHealthCheck(t, tc)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, baseURL)
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		testSwaggerUI(t, baseURL)
	})

	t.Run("UnauthenticatedAccess", func(t *testing.T) {
		testUnauthenticatedAccess(t, baseURL)
	})

	t.Run("MatchCRUDOverHTTP", func(t *testing.T) {
		testMatchCRUDOverHTTP(t, baseURL)
	})
}

func testHealthCheck(t *testing.T, tc *helpers.TestContainers) {
	ctx := context.Background()

	// Point the config at the mapped port on localhost, not the internal
	// container network name
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	dbHost, _ := tc.DBContainer.Host(ctx)
	dbPort, _ := tc.DBContainer.MappedPort(ctx, "3306")
	cfg.DBHost = dbHost
	cfg.DBPort = dbPort.Port()

	gormDB, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	defer database.Close(gormDB)

	result := services.HealthCheck(cfg, gormDB)

	if result.Status != "healthy" {
		t.Errorf("Health check failed: %+v", result)
	}

	t.Logf("Health check passed: status=%s, database=%s", result.Status, result.Database)
}

func testPrometheusMetrics(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	bodyStr := string(body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for metrics, got %d. Body: %s", resp.StatusCode, bodyStr)
	}

	t.Logf("Metrics endpoint working, found %d bytes of metrics", len(bodyStr))
}

func testSwaggerUI(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/swagger/index.html")
	if err != nil {
		t.Fatalf("Failed to get Swagger UI: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for Swagger UI, got %d", resp.StatusCode)
	}
}

// testUnauthenticatedAccess verifies the match routes refuse anonymous callers
func testUnauthenticatedAccess(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/matches/")
	if err != nil {
		t.Fatalf("Failed to access API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		body, _ := io.ReadAll(resp.Body)
		t.Logf("Response body: %s", string(body))
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}

	// Error envelope is valid JSON
	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Errorf("Response is not valid JSON: %v", err)
	}
}

// testMatchCRUDOverHTTP exercises the whole authenticated lifecycle through
// the deployed container: create, list, read, replace, delete.
func testMatchCRUDOverHTTP(t *testing.T, baseURL string) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		t.Fatal("JWT_SECRET not set")
	}
	token := helpers.SignTestToken(t, secret, "e2e-user", "e2e@example.com")
	client := &http.Client{Timeout: 10 * time.Second}

	doJSON := func(method, path string, payload interface{}) *http.Response {
		t.Helper()
		var body io.Reader
		if payload != nil {
			raw, err := json.Marshal(payload)
			if err != nil {
				t.Fatalf("Failed to marshal payload: %v", err)
			}
			body = bytes.NewReader(raw)
		}
		req, err := http.NewRequest(method, baseURL+path, body)
		if err != nil {
			t.Fatalf("Failed to build request: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("%s %s failed: %v", method, path, err)
		}
		return resp
	}

	// Create
	match := helpers.NewTestMatch("e2e-derby", "E2E Derby")
	resp := doJSON("POST", "/api/matches/", match)
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Create: expected 201, got %d: %s", resp.StatusCode, body)
	}
	resp.Body.Close()

	// Duplicate create conflicts
	resp = doJSON("POST", "/api/matches/", match)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Duplicate create: expected 409, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// List contains the match
	resp = doJSON("GET", "/api/matches/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("List: expected 200, got %d", resp.StatusCode)
	}
	var listed []types.Match
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("List: invalid JSON: %v", err)
	}
	resp.Body.Close()
	if len(listed) != 1 || listed[0].MatchID != "e2e-derby" {
		t.Errorf("List: expected the created match, got %+v", listed)
	}

	// Read back with full nested payload
	resp = doJSON("GET", "/api/matches/e2e-derby", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Get: expected 200, got %d", resp.StatusCode)
	}
	var got types.Match
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Get: invalid JSON: %v", err)
	}
	resp.Body.Close()
	if len(got.Periods) != 1 || len(got.Periods[0].Actions) != 1 {
		t.Errorf("Get: periods lost through the stack: %+v", got.Periods)
	}

	// Replace
	match.MatchName = "E2E Derby (replayed)"
	match.Periods = []types.Period{}
	resp = doJSON("PUT", "/api/matches/e2e-derby", match)
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Update: expected 200, got %d: %s", resp.StatusCode, body)
	}
	var updated types.Match
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("Update: invalid JSON: %v", err)
	}
	resp.Body.Close()
	if updated.MatchName != "E2E Derby (replayed)" || len(updated.Periods) != 0 {
		t.Errorf("Update: replacement not applied: %+v", updated)
	}

	// Delete then verify gone
	resp = doJSON("DELETE", "/api/matches/e2e-derby", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Delete: expected 204, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON("GET", "/api/matches/e2e-derby", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Get after delete: expected 404, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
