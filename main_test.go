package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andareed/siftly-tablegraph/config"
	"github.com/andareed/siftly-tablegraph/tablegraph"
)

func testConfig() config.Config {
	return config.Config{
		TimeFormat:     tablegraph.TimeFormatDefault,
		Funcs:          []string{"from"},
		CellPadding:    2,
		RequestTimeout: time.Second,
	}
}

func TestLoadModelAuto_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.csv")
	content := "time,host,usage\n2024-03-01T10:00:00Z,web-1,12.5\n2024-03-01T09:00:00Z,db-1\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := loadModelAuto(path, tablegraph.DefaultTableOptions(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if m.InitialPath != path || len(m.data.rows) != 2 {
		t.Fatalf("path=%q rows=%d", m.InitialPath, len(m.data.rows))
	}
	// short records are allowed and padded on display
	if got := m.data.rows[0].cols; got[1] != "db-1" || got[2] != "" {
		t.Fatalf("first row = %q", got)
	}
}

func TestLoadModelAuto_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadModelAuto(filepath.Join(dir, "x.txt"), tablegraph.DefaultTableOptions(), testConfig()); err == nil {
		t.Fatal("expected unsupported extension error")
	}

	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadModelAuto(empty, tablegraph.DefaultTableOptions(), testConfig()); err == nil {
		t.Fatal("expected an error for an empty CSV")
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := testConfig()
	cfg.ServerURL = "http://env:8888"
	applyFlags(&cfg, "dbg.log", "", "", "/chrono", "h:mm A")

	if cfg.DebugLog != "dbg.log" || cfg.Basepath != "/chrono" || cfg.TimeFormat != "h:mm A" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.ServerURL != "http://env:8888" {
		t.Fatal("empty flags must not override the environment")
	}
}
