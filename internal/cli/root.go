package cli

import "fmt"

func Run(args []string) error {
	if len(args) == 0 {
		printRootUsage()
		return nil
	}

	var err error
	switch args[0] {
	case "browse":
		err = runBrowse(args[1:])
	case "search":
		err = runSearch(args[1:])
	case "export":
		err = runExport(args[1:])
	case "collections":
		err = runCollections(args[1:])
	case "inspect":
		err = runInspect(args[1:])
	case "init":
		err = runInit(args[1:])
	case "settings":
		err = runSettings(args[1:])
	case "doctor":
		err = runDoctor(args[1:])
	case "help", "-h", "--help":
		printRootUsage()
		return nil
	default:
		printRootUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	return err
}

func printRootUsage() {
	fmt.Println("framepick: dataset browser and submission builder for video retrieval tasks")
	fmt.Println()
	fmt.Println("Quick Start:")
	fmt.Println("  framepick init")
	fmt.Println("  framepick doctor")
	fmt.Println("  framepick browse")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  browse       interactive session: query, select frames, export CSV")
	fmt.Println("  search       one-shot search against the configured source")
	fmt.Println("  export       one-shot search-and-export (selects every result)")
	fmt.Println("  collections  list dataset collection entries")
	fmt.Println("  inspect      summarize one dataset file (json/csv/npy/jpg/mp4)")
	fmt.Println("  init         write a default config file")
	fmt.Println("  settings     show or update configuration")
	fmt.Println("  doctor       run dataset and filesystem preflight checks")
	fmt.Println()
	fmt.Println("Notes:")
	fmt.Println("  - Use --json on commands for machine-readable output")
	fmt.Println("  - Tasks: kis (video,frame), qna (video,frame,answer), trake (grouped rows)")
}
