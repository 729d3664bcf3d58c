package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/gogpu/sdf"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SDF_SCENE", "SDF_MODE", "SDF_WORKERS", "SDF_OUTPUT", "SDF_ADDR", "SDF_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	want := Config{
		Scene:    "heart",
		Mode:     sdf.Thermal,
		Workers:  0,
		Output:   "sdf.png",
		Addr:     ":8080",
		LogLevel: slog.LevelInfo,
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SDF_SCENE", "ring")
	t.Setenv("SDF_MODE", "silhouette")
	t.Setenv("SDF_WORKERS", "3")
	t.Setenv("SDF_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Scene != "ring" || cfg.Mode != sdf.Silhouette || cfg.Workers != 3 || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("Load() = %+v", *cfg)
	}
}

func TestLoadBadMode(t *testing.T) {
	t.Setenv("SDF_MODE", "sepia")
	if _, err := Load(); err == nil {
		t.Error("Load() with bad mode should fail")
	}
}
