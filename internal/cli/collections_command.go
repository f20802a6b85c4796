package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"framepick/internal/config"
	"framepick/internal/dataset"
)

func runCollections(args []string) error {
	fs := flag.NewFlagSet("collections", flag.ContinueOnError)
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
	store := dataset.NewStore(cfg.DatabasePath)

	if fs.NArg() > 0 {
		return printCollectionEntries(store, fs.Arg(0), *jsonOut)
	}

	listings := make([]dataset.Listing, 0, len(dataset.Collections()))
	for _, col := range dataset.Collections() {
		listing, err := store.List(col.Name)
		if err != nil {
			// Surface the failure as the collection's single entry
			// instead of aborting the overview.
			listing = dataset.Listing{
				Collection: col.Name,
				Entries:    []string{"error: " + err.Error()},
			}
		}
		listings = append(listings, listing)
	}

	if *jsonOut {
		return printJSON(map[string]any{
			"database_path": cfg.DatabasePath,
			"collections":   listings,
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Collection", "Entries", "Status")
	for _, listing := range listings {
		status := "ok"
		if listing.Missing {
			status = "not found"
		}
		table.Append(listing.Collection, fmt.Sprintf("%d", len(listing.Entries)), status)
	}
	table.Render()
	return nil
}

func printCollectionEntries(store *dataset.Store, name string, jsonOut bool) error {
	listing, err := store.List(name)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(listing)
	}
	if listing.Missing {
		fmt.Printf("collection %q not found under %s\n", name, store.Root)
		return nil
	}
	if len(listing.Entries) == 0 {
		fmt.Println("no items found")
		return nil
	}
	for _, entry := range listing.Entries {
		fmt.Println(entry)
	}
	return nil
}
