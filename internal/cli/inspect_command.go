package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"

	"framepick/internal/config"
	"framepick/internal/dataset"
	"framepick/internal/inspect"
)

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "config file path")
	database := fs.String("database", "", "dataset root override")
	fs.SetOutput(flag.CommandLine.Output())
	fs.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: framepick inspect <collection> <entry>")
		fmt.Fprintln(flag.CommandLine.Output(), "       framepick inspect <path>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := ""
	switch fs.NArg() {
	case 1:
		path = fs.Arg(0)
	case 2:
		cfg, err := loadSettings(*configPath, *database, "", "")
		if err != nil {
			return err
		}
		store := dataset.NewStore(cfg.DatabasePath)
		if _, ok := dataset.CollectionByName(fs.Arg(0)); !ok {
			return fmt.Errorf("unknown collection %q", fs.Arg(0))
		}
		path = store.EntryPath(fs.Arg(0), fs.Arg(1))
	default:
		fs.Usage()
		return errors.New("inspect needs a file path or a collection and entry")
	}

	summary, err := inspect.File(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", filepath.Base(summary.Path), summary.Kind)
	if summary.Kind == inspect.KindCSV {
		if len(summary.Rows) == 0 {
			fmt.Println("empty file")
			return nil
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.Header(toAnySlice(summary.Rows[0])...)
		for _, row := range summary.Rows[1:] {
			table.Append(toAnySlice(row)...)
		}
		table.Render()
		if summary.Text != "" {
			fmt.Println(summary.Text)
		}
		return nil
	}

	fmt.Println(summary.Text)
	return nil
}

func toAnySlice(row []string) []any {
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
