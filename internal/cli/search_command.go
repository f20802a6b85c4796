package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"framepick/internal/config"
	"framepick/internal/model"
	"framepick/internal/query"
	"framepick/internal/search"
)

func buildQuery(text, image, file string) (search.Query, error) {
	q := search.Query{
		Text:         query.Normalize(text),
		ImagePath:    strings.TrimSpace(image),
		TextFilePath: strings.TrimSpace(file),
	}
	if strings.TrimSpace(text) != "" && q.Text == "" && q.ImagePath == "" && q.TextFilePath == "" {
		return search.Query{}, errors.New("query is empty after normalization")
	}
	if q.Empty() {
		return search.Query{}, errors.New("provide at least one input: --query, --image, or --file")
	}
	return q, nil
}

func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "config file path")
	text := fs.String("query", "", "free-text query")
	image := fs.String("image", "", "query image path (degrades to the text path)")
	file := fs.String("file", "", "query text file path")
	database := fs.String("database", "", "dataset root override")
	mock := fs.String("mock", "", "use mock data: true|false (empty keeps config)")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadSettings(*configPath, *database, "", *mock)
	if err != nil {
		return err
	}
	q, err := buildQuery(*text, *image, *file)
	if err != nil {
		return err
	}

	src := newSource(cfg, newLogger())
	records, err := src.Search(context.Background(), q)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if *jsonOut {
		return printJSON(map[string]any{
			"count":   len(records),
			"records": records,
		})
	}

	if len(records) == 0 {
		fmt.Println("no frames matched")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Frame", "Video", "Frame #", "Keyframe")
	for _, rec := range records {
		table.Append(rec.FrameID, rec.VideoName, frameNumber(rec), rec.KeyframePath)
	}
	table.Render()
	fmt.Printf("retrieved %d frames\n", len(records))
	return nil
}

func frameNumber(rec model.ResultRecord) string {
	v, ok := rec.Metadata["frame_number"]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
