package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quilt"
	"github.com/iw2rmb/quilt/gridview"
	"github.com/iw2rmb/quilt/internal/config"
	"github.com/iw2rmb/quilt/internal/logging"
	"github.com/iw2rmb/quilt/xlsx"
)

// memClipboard keeps copied cells for the lifetime of the program.
type memClipboard struct {
	text string
}

func (c *memClipboard) ReadText() (string, error) { return c.text, nil }
func (c *memClipboard) WriteText(s string) error  { c.text = s; return nil }

// systemClipboard uses the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

func newClipboard(useSystem bool) gridview.Clipboard {
	if useSystem && !clipboard.Unsupported {
		return systemClipboard{}
	}
	return &memClipboard{}
}

type model struct {
	grid gridview.Model
	log  *slog.Logger

	lastStatus string
}

func newModel(cfg *config.Config, log *slog.Logger) model {
	gc := gridview.Config{
		Rows:          cfg.Grid.Rows,
		Cols:          cfg.Grid.Cols,
		Cells:         cfg.Grid.Cells,
		CellWidth:     cfg.View.CellWidth,
		ShowToolbar:   cfg.View.ShowToolbar,
		ShowHeaders:   cfg.View.ShowHeaders,
		ShowRowNums:   cfg.View.ShowRowNums,
		ShowRowDelete: cfg.View.ShowRowDelete,
		ShowStatus:    cfg.View.ShowStatus,
		ReadOnly:      cfg.View.ReadOnly,
		Style:         gridview.DefaultStyle(),
		Clipboard:     newClipboard(cfg.View.SystemClipboard),
		OnChange: func(ev gridview.ChangeEvent) {
			if !ev.HasChange {
				return
			}
			log.Debug("grid change",
				"kind", ev.Change.Kind.String(),
				"version", ev.Version,
				"rows", ev.Rows,
				"cols", ev.Cols,
			)
		},
	}
	return model{grid: gridview.New(gc), log: log}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+q" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	if s := m.grid.Status(); s != m.lastStatus {
		m.lastStatus = s
		if s != "" {
			m.log.Info("grid status", "status", s)
		}
	}
	return m, cmd
}

func (m model) View() string { return m.grid.View() }

func run() error {
	var (
		configPath  = flag.String("config", "", "path to a YAML config file")
		logPath     = flag.String("log", "", "append logs to this file")
		logLevel    = flag.String("log-level", "", "log level: debug, info, warn, error")
		exportPath  = flag.String("export", "", "write the grid to this .xlsx file on exit")
		showVersion = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(quilt.Version())
		return nil
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	path, level := logging.Resolve(*logPath, *logLevel, cfg.Log.File, cfg.Log.Level)
	log, closer, err := logging.Open(path, level)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	log.Info("starting", "version", quilt.Version(), "rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols)

	p := tea.NewProgram(newModel(cfg, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	out := *exportPath
	if out == "" {
		out = cfg.Export.Path
	}
	if out == "" {
		return nil
	}
	fm, ok := final.(model)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}
	opt := xlsx.Options{Sheet: cfg.Export.Sheet, ColWidth: cfg.Export.ColWidth}
	if err := xlsx.Save(out, fm.grid.Grid(), opt); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Info("exported", "path", out, "rows", fm.grid.Grid().Rows(), "cols", fm.grid.Grid().Cols())
	return nil
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
