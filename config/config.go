package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/andareed/siftly-tablegraph/ifql"
	"github.com/andareed/siftly-tablegraph/logging"
	"github.com/andareed/siftly-tablegraph/tablegraph"
)

// Config holds runtime configuration for sftable.
type Config struct {
	DebugLog    string
	OptionsFile string

	ServerURL      string
	Basepath       string
	LinksPath      string
	RequestTimeout time.Duration

	TimeFormat  tablegraph.TimeFormat
	Funcs       []string
	CellPadding int
	AltScreen   bool
}

// FromEnv loads configuration from SFTABLE_* environment variables after
// applying defaults from env files. Variables already set always win.
func FromEnv() Config {
	loadEnvFiles()

	return Config{
		DebugLog:       getEnv("SFTABLE_DEBUG_LOG", ""),
		OptionsFile:    getEnv("SFTABLE_OPTIONS_FILE", ""),
		ServerURL:      getEnv("SFTABLE_SERVER_URL", ""),
		Basepath:       getEnv("SFTABLE_BASEPATH", ""),
		LinksPath:      getEnv("SFTABLE_LINKS_PATH", "/chronograf/v1"),
		RequestTimeout: getEnvDuration("SFTABLE_REQUEST_TIMEOUT", 10*time.Second),
		TimeFormat:     tablegraph.TimeFormat(getEnv("SFTABLE_TIME_FORMAT", string(tablegraph.TimeFormatDefault))),
		Funcs:          getEnvList("SFTABLE_FUNCS", ifql.DefaultFuncs),
		CellPadding:    getEnvInt("SFTABLE_CELL_PADDING", 2),
		AltScreen:      getEnvBool("SFTABLE_ALT_SCREEN", true),
	}
}

func envFileCandidates() []string {
	candidates := make([]string, 0, 3)
	if explicit := strings.TrimSpace(os.Getenv("SFTABLE_CONFIG_FILE")); explicit != "" {
		candidates = append(candidates, explicit)
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, "sftable.env"))
	}
	if home, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "sftable", "config.env"))
	}
	return candidates
}

func loadEnvFiles() {
	for _, candidate := range envFileCandidates() {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			logging.Warnf("config: ignoring %s: %v", candidate, err)
			continue
		}
		logging.Infof("config: defaults loaded from %s", candidate)
	}
}

// LoadTableOptions reads a YAML cell file on top of the default options.
// An empty path returns the defaults.
func LoadTableOptions(path string) (tablegraph.TableOptions, error) {
	opts := tablegraph.DefaultTableOptions()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse options file %q: %w", path, err)
	}
	if opts.SortBy.Direction == "" {
		opts.SortBy.Direction = tablegraph.Ascending
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("options file %q: %w", path, err)
	}
	return opts, nil
}

// SaveTableOptions writes opts as YAML.
func SaveTableOptions(path string, opts tablegraph.TableOptions) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return parsed
}

// getEnvDuration accepts Go durations ("5s") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if n, err := strconv.Atoi(val); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func getEnvList(key string, def []string) []string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return append([]string(nil), def...)
	}

	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
