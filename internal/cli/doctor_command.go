package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"framepick/internal/config"
	"framepick/internal/dataset"
	"framepick/internal/fsio"
)

type doctorCheck struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type doctorResult struct {
	OK     bool          `json:"ok"`
	Checks []doctorCheck `json:"checks"`
}

func runDoctor(args []string) error {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "config file path")
	database := fs.String("database", "", "dataset root override")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadSettings(*configPath, *database, "", "")
	if err != nil {
		return err
	}

	res := diagnose(cfg)

	if *jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		for _, c := range res.Checks {
			mark := "ok"
			if !c.OK {
				mark = "FAIL"
			}
			fmt.Printf("[%s] %-28s %s\n", mark, c.Name, c.Message)
		}
	}

	if !res.OK {
		return errors.New("doctor found problems")
	}
	return nil
}

func diagnose(cfg config.Settings) doctorResult {
	checks := make([]doctorCheck, 0, len(dataset.Collections())+2)

	if cfg.UseMockData {
		checks = append(checks, doctorCheck{
			Name:    "source",
			OK:      true,
			Message: "mock data enabled; dataset checks are informational",
		})
	}

	rootOK := true
	if info, err := os.Stat(cfg.DatabasePath); err != nil || !info.IsDir() {
		rootOK = false
	}
	checks = append(checks, doctorCheck{
		Name:    "directory:database",
		OK:      rootOK || cfg.UseMockData,
		Message: databaseMessage(cfg.DatabasePath, rootOK),
	})

	store := dataset.NewStore(cfg.DatabasePath)
	for _, col := range dataset.Collections() {
		listing, err := store.List(col.Name)
		check := doctorCheck{Name: "collection:" + col.Name}
		switch {
		case err != nil:
			check.Message = err.Error()
		case listing.Missing:
			check.Message = "not found"
			check.OK = cfg.UseMockData
		default:
			check.OK = true
			check.Message = fmt.Sprintf("%d entries", len(listing.Entries))
		}
		checks = append(checks, check)
	}

	outOK, outMsg := fsio.EnsureWritableDir(cfg.OutputDir)
	checks = append(checks, doctorCheck{
		Name:    "directory:output",
		OK:      outOK,
		Message: outMsg,
	})

	ok := true
	for _, c := range checks {
		if !c.OK {
			ok = false
			break
		}
	}
	return doctorResult{OK: ok, Checks: checks}
}

func databaseMessage(path string, ok bool) string {
	if ok {
		return path
	}
	return fmt.Sprintf("%s is not a directory", path)
}
