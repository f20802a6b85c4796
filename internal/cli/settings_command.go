package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"framepick/internal/config"
)

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "config file path")
	force := fs.Bool("force", false, "overwrite an existing config file")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := strings.TrimSpace(*configPath)
	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
	}

	if err := config.Save(path, config.DefaultSettings()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	fmt.Println("next: framepick settings set --database <dataset-root> --mock false")
	return nil
}

func runSettings(args []string) error {
	if len(args) == 0 {
		printSettingsUsage()
		return nil
	}
	switch args[0] {
	case "show":
		return runSettingsShow(args[1:])
	case "set":
		return runSettingsSet(args[1:])
	case "help", "-h", "--help":
		printSettingsUsage()
		return nil
	default:
		printSettingsUsage()
		return fmt.Errorf("unknown settings subcommand %q", args[0])
	}
}

func printSettingsUsage() {
	fmt.Println("settings show [--config <path>] [--json]")
	fmt.Println("settings set  [--config <path>] [--service-url <url>] [--database <path>]")
	fmt.Println("              [--output-dir <path>] [--mock true|false]")
}

func runSettingsShow(args []string) error {
	fs := flag.NewFlagSet("settings show", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "config file path")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(map[string]any{
			"config_path": strings.TrimSpace(*configPath),
			"settings":    cfg,
		})
	}

	fmt.Printf("config: %s\n", strings.TrimSpace(*configPath))
	fmt.Printf("service_url: %s\n", cfg.ServiceURL)
	fmt.Printf("database_path: %s\n", cfg.DatabasePath)
	fmt.Printf("output_dir: %s\n", cfg.OutputDir)
	fmt.Printf("use_mock_data: %v\n", cfg.UseMockData)
	return nil
}

func runSettingsSet(args []string) error {
	fs := flag.NewFlagSet("settings set", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "config file path")
	serviceURL := fs.String("service-url", "", "retrieval service URL (empty keeps current)")
	database := fs.String("database", "", "dataset root (empty keeps current)")
	outputDir := fs.String("output-dir", "", "export output root (empty keeps current)")
	mock := fs.String("mock", "", "use mock data: true|false (empty keeps current)")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	changed := false
	if strings.TrimSpace(*serviceURL) != "" {
		cfg.ServiceURL = strings.TrimSpace(*serviceURL)
		changed = true
	}
	if strings.TrimSpace(*database) != "" {
		cfg.DatabasePath = strings.TrimSpace(*database)
		changed = true
	}
	if strings.TrimSpace(*outputDir) != "" {
		cfg.OutputDir = strings.TrimSpace(*outputDir)
		changed = true
	}
	if strings.TrimSpace(*mock) != "" {
		switch strings.ToLower(strings.TrimSpace(*mock)) {
		case "true", "yes", "on", "1":
			cfg.UseMockData = true
		case "false", "no", "off", "0":
			cfg.UseMockData = false
		default:
			return fmt.Errorf("--mock must be true or false, got %q", *mock)
		}
		changed = true
	}
	if !changed {
		return errors.New("nothing to change (see settings help)")
	}

	if err := config.Save(*configPath, cfg); err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(map[string]any{
			"config_path": strings.TrimSpace(*configPath),
			"settings":    cfg,
		})
	}
	fmt.Printf("updated %s\n", strings.TrimSpace(*configPath))
	return nil
}
