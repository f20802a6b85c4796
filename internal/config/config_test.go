package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !s.UseMockData {
		t.Fatal("default must be mock mode")
	}
	if s.ServiceURL != DefaultServiceURL || s.DatabasePath != DefaultDatabasePath {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framepick.yaml")
	want := Settings{
		ServiceURL:   "http://retrieval.local:9000",
		DatabasePath: "/data/aic",
		OutputDir:    "/data/out",
		UseMockData:  false,
	}
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FRAMEPICK_DATABASE_PATH", "/env/dataset")

	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if s.DatabasePath != "/env/dataset" {
		t.Fatalf("env override ignored: %+v", s)
	}
}

func TestLoadNormalizesBlankValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framepick.yaml")
	if err := os.WriteFile(path, []byte("database_path: \"  \"\nuse_mock_data: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.DatabasePath != DefaultDatabasePath {
		t.Fatalf("blank database_path must fall back to default, got %q", s.DatabasePath)
	}
	if s.UseMockData {
		t.Fatal("explicit use_mock_data=false must survive")
	}
}
