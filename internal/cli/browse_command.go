package cli

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"framepick/internal/config"
	"framepick/internal/dataset"
	"framepick/internal/model"
	"framepick/internal/query"
	"framepick/internal/results"
	"framepick/internal/search"
)

type browseMode int

const (
	browseModeQuery browseMode = iota
	browseModeResults
	browseModeAnswer
	browseModeCollections
)

type browseModel struct {
	cfg    config.Settings
	source search.Source
	store  *dataset.Store
	set    *results.Set
	task   model.Task

	queryInput  textinput.Model
	answerInput textinput.Model

	imagePath     string
	queryFilePath string

	mode   browseMode
	cursor int
	width  int
	height int

	searching     bool
	statusMessage string
	listings      []dataset.Listing
	fatalErr      error
}

func runBrowse(args []string) error {
	fs := flag.NewFlagSet("browse", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "config file path")
	database := fs.String("database", "", "dataset root override")
	mock := fs.String("mock", "", "use mock data: true|false (empty keeps config)")
	initialQuery := fs.String("query", "", "prefill the query input")
	image := fs.String("image", "", "attach a query image (degrades to the text path)")
	file := fs.String("file", "", "attach a query text file; prefills the query and may select the task")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !stdinIsTTY() {
		return errors.New("browse requires an interactive terminal (TTY)")
	}

	cfg, err := loadSettings(*configPath, *database, "", *mock)
	if err != nil {
		return err
	}

	m, err := newBrowseModel(cfg, strings.TrimSpace(*initialQuery), strings.TrimSpace(*image), strings.TrimSpace(*file))
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "tty") {
			return errors.New("browse requires an interactive terminal (TTY)")
		}
		return err
	}
	if fm, ok := finalModel.(browseModel); ok {
		return fm.fatalErr
	}
	return nil
}

func newBrowseModel(cfg config.Settings, initialQuery, imagePath, queryFilePath string) (browseModel, error) {
	queryInput := textinput.New()
	queryInput.Prompt = "> "
	queryInput.CharLimit = 1024
	queryInput.Width = 60
	queryInput.SetValue(initialQuery)
	queryInput.Focus()

	answerInput := textinput.New()
	answerInput.Prompt = "> "
	answerInput.CharLimit = 256
	answerInput.Width = 60

	m := browseModel{
		cfg:           cfg,
		source:        newSource(cfg, slog.New(slog.DiscardHandler)),
		store:         dataset.NewStore(cfg.DatabasePath),
		set:           results.NewSet(),
		task:          model.TaskKIS,
		queryInput:    queryInput,
		answerInput:   answerInput,
		imagePath:     imagePath,
		queryFilePath: queryFilePath,
		mode:          browseModeQuery,
		statusMessage: "ready",
	}

	if queryFilePath != "" {
		data, err := os.ReadFile(queryFilePath)
		if err != nil {
			return browseModel{}, fmt.Errorf("read query file %s: %w", queryFilePath, err)
		}
		m.queryInput.SetValue(strings.TrimSpace(string(data)))
		if task, ok := model.DetectTask(queryFilePath); ok {
			m.task = task
		}
	}
	return m, nil
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.queryInput.Width = clampInt(m.width-8, 20, 120)
		m.answerInput.Width = clampInt(m.width-8, 20, 120)
		return m, nil
	case browseSearchMsg:
		m.searching = false
		if msg.err != nil {
			m.statusMessage = "search failed: " + msg.err.Error()
			return m, nil
		}
		m.set.Replace(msg.records)
		m.cursor = 0
		m.mode = browseModeResults
		m.statusMessage = fmt.Sprintf("retrieved %d frames", m.set.Len())
		return m, nil
	case browseCollectionsMsg:
		if msg.err != nil {
			m.statusMessage = "collections: " + msg.err.Error()
			return m, nil
		}
		m.listings = msg.listings
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case browseModeQuery:
		return m.updateQuery(keyMsg)
	case browseModeResults:
		return m.updateResults(keyMsg)
	case browseModeAnswer:
		return m.updateAnswer(keyMsg)
	case browseModeCollections:
		return m.updateCollections(keyMsg)
	default:
		return m, nil
	}
}

func (m browseModel) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		return m.submitSearch()
	case "ctrl+p":
		m.queryInput.SetValue(query.Normalize(m.queryInput.Value()))
		m.statusMessage = "punctuation removed"
		return m, nil
	case "ctrl+r":
		m.queryInput.SetValue("")
		m.answerInput.SetValue("")
		m.imagePath = ""
		m.queryFilePath = ""
		m.set.Replace(nil)
		m.statusMessage = "ready"
		return m, nil
	case "tab":
		if m.set.Len() > 0 {
			m.mode = browseModeResults
		}
		return m, nil
	case "ctrl+d":
		m.mode = browseModeCollections
		m.cursor = 0
		return m, browseCollectionsCmd(m.store)
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

func (m browseModel) submitSearch() (tea.Model, tea.Cmd) {
	if m.searching {
		m.statusMessage = "search already running"
		return m, nil
	}
	q, ok := m.buildBrowseQuery()
	if !ok {
		m.statusMessage = "provide at least one input: text, image, or query file"
		return m, nil
	}
	q.Text = query.Normalize(q.Text)
	m.searching = true
	m.statusMessage = "searching..."
	return m, browseSearchCmd(m.source, q)
}

func (m browseModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	records := m.set.Records()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(records)-1 {
			m.cursor++
		}
		return m, nil
	case " ", "space":
		if m.cursor < len(records) {
			id := records[m.cursor].FrameID
			m.set.Toggle(id, !m.set.IsSelected(id))
			m.statusMessage = fmt.Sprintf("selected %d frames", m.set.SelectedCount())
		}
		return m, nil
	case "a":
		m.set.SelectAll()
		m.statusMessage = fmt.Sprintf("selected %d frames", m.set.SelectedCount())
		return m, nil
	case "c":
		m.set.ClearSelection()
		m.statusMessage = "selection cleared"
		return m, nil
	case "t":
		m.task = nextTask(m.task)
		m.statusMessage = "task: " + string(m.task)
		return m, nil
	case "e", "enter":
		if m.task == model.TaskQnA && strings.TrimSpace(m.answerInput.Value()) == "" {
			m.mode = browseModeAnswer
			m.answerInput.Focus()
			m.statusMessage = "enter the answer for the QnA export"
			return m, textinput.Blink
		}
		return m.runExportAction(), nil
	case "/":
		m.mode = browseModeQuery
		m.queryInput.Focus()
		return m, textinput.Blink
	case "d":
		m.mode = browseModeCollections
		m.cursor = 0
		return m, browseCollectionsCmd(m.store)
	}
	return m, nil
}

func (m browseModel) updateAnswer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.mode = browseModeResults
		m.statusMessage = "export cancelled"
		return m, nil
	case "enter":
		if strings.TrimSpace(m.answerInput.Value()) == "" {
			m.statusMessage = "answer is required for the QnA task"
			return m, nil
		}
		m.mode = browseModeResults
		return m.runExportAction(), nil
	}

	var cmd tea.Cmd
	m.answerInput, cmd = m.answerInput.Update(msg)
	return m, cmd
}

func (m browseModel) updateCollections(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "d", "q":
		if m.set.Len() > 0 {
			m.mode = browseModeResults
		} else {
			m.mode = browseModeQuery
			m.queryInput.Focus()
		}
		m.cursor = 0
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.listings)-1 {
			m.cursor++
		}
		return m, nil
	case "r":
		return m, browseCollectionsCmd(m.store)
	}
	return m, nil
}
