package config

import (
	"testing"
)

func TestLoadConfig_DatabaseURLFallback(t *testing.T) {
	t.Run("defaults to embedded sqlite file", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("MYSQL_URL", "")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Database.URL != "sqlite://tasks.db" {
			t.Errorf("expected sqlite fallback, got %q", cfg.Database.URL)
		}
		if cfg.Database.Scheme() != "sqlite" {
			t.Errorf("expected scheme sqlite, got %q", cfg.Database.Scheme())
		}
	})

	t.Run("DATABASE_URL wins", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/tasks")
		t.Setenv("MYSQL_URL", "mysql://u:p@localhost/tasks")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Database.Scheme() != "postgres" {
			t.Errorf("expected scheme postgres, got %q", cfg.Database.Scheme())
		}
	})

	t.Run("MYSQL_URL is honored when DATABASE_URL is absent", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("MYSQL_URL", "mysql://u:p@localhost/tasks")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Database.Scheme() != "mysql" {
			t.Errorf("expected scheme mysql, got %q", cfg.Database.Scheme())
		}
	})
}

func TestLoadConfig_PortDefault(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.App.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.App.Port)
	}
}
