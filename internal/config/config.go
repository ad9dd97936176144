package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/feedview/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigFile  = "FEEDVIEW_CONFIG"
	envWidth       = "FEEDVIEW_WIDTH"
	envHeight      = "FEEDVIEW_HEIGHT"
	envTrace       = "FEEDVIEW_TRACE"
	envLogFile     = "FEEDVIEW_LOG_FILE"
	envNextKey     = "FEEDVIEW_NEXT_KEY"
	envPreviousKey = "FEEDVIEW_PREVIOUS_KEY"
	envReplay      = "FEEDVIEW_REPLAY"
	envReplayPace  = "FEEDVIEW_REPLAY_PACE"
	envHeadless    = "FEEDVIEW_HEADLESS"
)

var (
	ErrInvalidKey      = errors.New("cycle key must be a single letter")
	ErrReservedKey     = errors.New("cycle key is taken by the terminal")
	ErrDuplicateKeys   = errors.New("next and previous keys must differ")
	ErrHeadlessReplay  = errors.New("headless mode requires a replay script")
	ErrNegativeSetting = errors.New("setting must be >= 0")
)

// fileSettings mirrors the TOML config file. Keys absent from the file keep
// the built-in defaults.
type fileSettings struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Trace       bool   `toml:"trace"`
	LogFile     string `toml:"log_file"`
	NextKey     string `toml:"next_key"`
	PreviousKey string `toml:"previous_key"`
	Replay      string `toml:"replay"`
	ReplayPace  string `toml:"replay_pace"`
	Headless    bool   `toml:"headless"`
}

func defaults() fileSettings {
	return fileSettings{
		NextKey:     "v",
		PreviousKey: "g",
	}
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// in the order defaults, config file, environment, flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := envOrDefault(env, envConfigFile, "")
	if v, ok := lookupFlag(args, "config"); ok {
		path = v
	}
	base, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	basePace, err := parsePace(base.ReplayPace)
	if err != nil {
		return Config{}, fmt.Errorf("config file %s: replay_pace: %w", path, err)
	}

	fs := flag.NewFlagSet("feedview", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a TOML config file")
	width := fs.Int("width", envOrInt(env, envWidth, base.Width), "viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, base.Height), "viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, base.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, base.LogFile), "path to the log file")
	nextKey := fs.String("next-key", envOrDefault(env, envNextKey, base.NextKey), "letter that with ctrl focuses the next dialog")
	previousKey := fs.String("previous-key", envOrDefault(env, envPreviousKey, base.PreviousKey), "letter that with ctrl focuses the previous dialog")
	replay := fs.String("replay", envOrDefault(env, envReplay, base.Replay), "key script to replay as input")
	pace := fs.Duration("replay-pace", envOrDuration(env, envReplayPace, basePace), "minimum delay between replayed events")
	headless := fs.Bool("headless", envOrBool(env, envHeadless, base.Headless), "print frames as text instead of opening the terminal UI")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width: %w (got %d)", ErrNegativeSetting, *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height: %w (got %d)", ErrNegativeSetting, *height)
	}
	if *pace < 0 {
		return Config{}, fmt.Errorf("replay-pace: %w (got %s)", ErrNegativeSetting, *pace)
	}
	next, err := keyRune("next-key", *nextKey)
	if err != nil {
		return Config{}, err
	}
	previous, err := keyRune("previous-key", *previousKey)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:       *width,
			Height:      *height,
			NextKey:     next,
			PreviousKey: previous,
			ReplayPath:  *replay,
			ReplayPace:  *pace,
			Headless:    *headless,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"config":      path,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
			"nextKey":     *nextKey,
			"previousKey": *previousKey,
			"replay":      *replay,
			"replayPace":  pace.String(),
			"headless":    strconv.FormatBool(*headless),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func readFile(path string) (fileSettings, error) {
	settings := defaults()
	if path == "" {
		return settings, nil
	}
	md, err := toml.DecodeFile(path, &settings)
	if err != nil {
		return fileSettings{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileSettings{}, fmt.Errorf("config file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return settings, nil
}

func parsePace(v string) (time.Duration, error) {
	if strings.TrimSpace(v) == "" {
		return 0, nil
	}
	return time.ParseDuration(v)
}

// lookupFlag finds the value of a flag before the full flag set is parsed, so
// the config file can provide defaults for the other flags.
func lookupFlag(args []string, name string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		trimmed := strings.TrimLeft(arg, "-")
		if trimmed == arg || len(arg)-len(trimmed) > 2 {
			continue
		}
		if v, ok := strings.CutPrefix(trimmed, name+"="); ok {
			return v, true
		}
		if trimmed == name && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

func keyRune(name, v string) (rune, error) {
	if utf8.RuneCountInString(v) != 1 {
		return 0, fmt.Errorf("%s %q: %w", name, v, ErrInvalidKey)
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// reservedKeys arrive as backspace, tab, enter or interrupt when held with
// ctrl.
const reservedKeys = "chim"

// Validate checks settings that depend on each other. Terminals only deliver
// ctrl chords for ASCII letters, so cycle keys are restricted to those.
func Validate(cfg Config) error {
	for _, k := range []struct {
		name string
		r    rune
	}{
		{"next-key", cfg.App.NextKey},
		{"previous-key", cfg.App.PreviousKey},
	} {
		if !isASCIILetter(k.r) {
			return fmt.Errorf("%s %q: %w", k.name, k.r, ErrInvalidKey)
		}
		if strings.ContainsRune(reservedKeys, unicode.ToLower(k.r)) {
			return fmt.Errorf("%s %q: %w", k.name, k.r, ErrReservedKey)
		}
	}
	if unicode.ToLower(cfg.App.NextKey) == unicode.ToLower(cfg.App.PreviousKey) {
		return fmt.Errorf("%q: %w", cfg.App.NextKey, ErrDuplicateKeys)
	}
	if cfg.App.Headless && cfg.App.ReplayPath == "" {
		return ErrHeadlessReplay
	}
	return nil
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
