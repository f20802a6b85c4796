package cli

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"

	"framepick/internal/config"
	"framepick/internal/dataset"
	"framepick/internal/search"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func stdinIsTTY() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func newLogger() *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelWarn,
		TimeFormat: "15:04:05",
	}))
}

// newSource picks the search implementation once per invocation: mock
// when configured, otherwise a scan over the local dataset.
func newSource(cfg config.Settings, log *slog.Logger) search.Source {
	if cfg.UseMockData {
		return search.NewMockSource()
	}
	return search.NewLocalSource(dataset.NewStore(cfg.DatabasePath), log)
}

// loadSettings reads the config file and applies the flag overrides
// shared by the data-path commands.
func loadSettings(configPath, database, output string, mock string) (config.Settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, err
	}
	if strings.TrimSpace(database) != "" {
		cfg.DatabasePath = strings.TrimSpace(database)
	}
	if strings.TrimSpace(output) != "" {
		cfg.OutputDir = strings.TrimSpace(output)
	}
	switch strings.ToLower(strings.TrimSpace(mock)) {
	case "":
	case "true", "yes", "on", "1":
		cfg.UseMockData = true
	case "false", "no", "off", "0":
		cfg.UseMockData = false
	}
	return cfg, nil
}
