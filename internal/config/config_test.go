package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DATABASE", "matchdb")
	t.Setenv("DB_USER", "matchdb_user")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("Expected default port 3000, got %s", cfg.Port)
	}
	if cfg.DBType != "mysql" {
		t.Errorf("Expected default db type mysql, got %s", cfg.DBType)
	}
	if cfg.DBConnectionLimit != 5 {
		t.Errorf("Expected default connection limit 5, got %d", cfg.DBConnectionLimit)
	}
}

func TestLoadRequiresDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_DATABASE", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error when DB_DATABASE is missing")
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error when JWT_SECRET is missing")
	}
}

func TestLoadSqliteNeedsNoUser(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_USER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected sqlite to skip DB_USER requirement, got %v", err)
	}
	if cfg.DBType != "sqlite" {
		t.Errorf("Expected sqlite, got %s", cfg.DBType)
	}
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("DB_CONNECTION_LIMIT", "not-a-number")

	if got := getEnvAsInt("DB_CONNECTION_LIMIT", 7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
}
