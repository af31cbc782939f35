package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tablegraph/ajax"
	"github.com/andareed/siftly-tablegraph/config"
	"github.com/andareed/siftly-tablegraph/logging"
	"github.com/andareed/siftly-tablegraph/tablegraph"
)

func main() {
	logFile := flag.String("debug", "", "Write Debug Logs to file")
	versionFlag := flag.Bool("version", false, "print version and exit")
	optionsFile := flag.String("options", "", "YAML table options (field names, time format, wrapping)")
	server := flag.String("server", "", "backend URL to fetch query functions from")
	basepath := flag.String("basepath", "", "basepath the backend is served under")
	format := flag.String("format", "", "time format, overrides the options file; tokens: "+tablegraph.TimeFormatTooltipLink)

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	// quiet until the real log file is known
	if _, err := logging.SetupLogging(""); err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	cfg := config.FromEnv()
	applyFlags(&cfg, *logFile, *optionsFile, *server, *basepath, *format)

	cleanup, err := logging.SetupLogging(cfg.DebugLog)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("siftly-tablegraph %s: started", Version)

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: sftable [--debug debug.log] [--options cell.yaml] [--server URL] <file.csv|file.json>")
		os.Exit(1)
	}

	opts, err := config.LoadTableOptions(cfg.OptionsFile)
	if err != nil {
		log.Fatalf("failed to load options: %v", err)
	}
	if *format != "" || cfg.TimeFormat != tablegraph.TimeFormatDefault {
		opts.TimeFormat = cfg.TimeFormat
	}

	inputPath := args[0]
	m, err := loadModelAuto(inputPath, opts, cfg)
	if err != nil {
		log.Fatalf("failed to load %q: %v", inputPath, err)
	}

	if cfg.ServerURL != "" {
		client := ajax.NewClient(cfg.ServerURL, cfg.Basepath, nil, ajax.WithTimeout(cfg.RequestTimeout))
		m.withServer(ajax.NewLinksCache(client, cfg.LinksPath), cfg.RequestTimeout)
	}

	programOpts := []tea.ProgramOption{}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

// applyFlags lets non-empty command line values override the environment.
func applyFlags(cfg *config.Config, logFile, optionsFile, server, basepath, format string) {
	if logFile != "" {
		cfg.DebugLog = logFile
	}
	if optionsFile != "" {
		cfg.OptionsFile = optionsFile
	}
	if server != "" {
		cfg.ServerURL = server
	}
	if basepath != "" {
		cfg.Basepath = basepath
	}
	if format != "" {
		cfg.TimeFormat = tablegraph.TimeFormat(format)
	}
}

func loadModelAuto(path string, opts tablegraph.TableOptions, cfg config.Config) (*model, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return newModelFromJSONFile(path, cfg)
	case ".csv":
		return newModelFromCSVFile(path, opts, cfg)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (want .csv or .json)", ext)
	}
}

// newModelFromJSONFile restores a snapshot written with ctrl+s. The
// snapshot carries its own table options.
func newModelFromJSONFile(path string, cfg config.Config) (*model, error) {
	m := newModel(nil, nil, tablegraph.DefaultTableOptions(), cfg.Funcs, cfg.CellPadding)
	if err := LoadModel(m, path); err != nil {
		return nil, err
	}
	m.InitialPath = path
	return m, nil
}

func newModelFromCSVFile(path string, opts tablegraph.TableOptions, cfg config.Config) (*model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV %q has no rows", path)
	}

	m := newModel(records[0], records[1:], opts, cfg.Funcs, cfg.CellPadding)
	m.InitialPath = path
	return m, nil
}
