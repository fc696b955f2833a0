package app

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"time"

	"github.com/akamensky/argparse"

	"langton-ant/internal/core"
)

var (
	// ErrHelp is returned by ParseArgs after printing usage for -h.
	ErrHelp = errors.New("help requested")
	// ErrBadSize reports a size argument not in WIDTHxHEIGHT form.
	ErrBadSize = errors.New("expected in the format WIDTHxHEIGHT")
	// ErrEmptyMap reports a map with zero width or height.
	ErrEmptyMap = errors.New("map size could not be null")
	// ErrEmptyWindow reports a window with zero width or height.
	ErrEmptyWindow = errors.New("window resolution could not be null")
	// ErrBadInterval reports a negative or out of range interval.
	ErrBadInterval = errors.New("interval must be between 0 and 24h")
	// ErrTooLarge reports a map or window exceeding the allocation limits.
	ErrTooLarge = errors.New("size too large")
)

const (
	// MaxMapCells bounds the number of grid cells.
	MaxMapCells = 1 << 26
	// MaxWindowSide bounds each side of the window resolution in pixels.
	MaxWindowSide = 8192
	// MaxInterval bounds each cadence interval.
	MaxInterval = 24 * time.Hour
)

var sizePattern = regexp.MustCompile(`^(\d+)x(\d+)$`)

// Config represents the command-line parameters for the application. It is
// frozen once parsed.
type Config struct {
	Map    core.Size
	Window core.Size

	Refresh time.Duration
	Cycle   time.Duration
	Pan     time.Duration

	Seed int64
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{
		Map:     core.Size{W: 500, H: 500},
		Window:  core.Size{W: 800, H: 600},
		Refresh: 40 * time.Millisecond,
		Cycle:   5 * time.Millisecond,
		Pan:     20 * time.Millisecond,
	}
}

// LoopTPS returns the ebiten tick rate needed to service the fastest cadence,
// kept between 60 and 1000 ticks per second.
func (c *Config) LoopTPS() int {
	fastest := min(c.Cycle, c.Refresh, c.Pan)
	if fastest <= time.Millisecond {
		return 1000
	}
	return min(max(int(time.Second/fastest), 60), 1000)
}

// ParseArgs parses args (including the program name) into a Config. Usage and
// errors are written to out. It returns ErrHelp when -h was given.
func ParseArgs(args []string, out io.Writer) (*Config, error) {
	cfg, err := parseArgs(args, out)
	if err != nil && !errors.Is(err, ErrHelp) {
		fmt.Fprintf(out, "%v\nTry -h or --help to see usage.\n", err)
	}
	return cfg, err
}

func parseArgs(args []string, out io.Writer) (*Config, error) {
	def := NewConfig()
	parser := argparse.NewParser("langton", "Langton's Ant visualizer.")
	parser.DisableHelp()

	mapSize := parser.String("m", "map-size", &argparse.Options{
		Default: formatSize(def.Map),
		Help:    "the map size (WIDTHxHEIGHT)",
	})
	windowSize := parser.String("w", "window-size", &argparse.Options{
		Default: formatSize(def.Window),
		Help:    "the window resolution (WIDTHxHEIGHT)",
	})
	refresh := parser.Int("r", "refresh", &argparse.Options{
		Default: int(def.Refresh.Milliseconds()),
		Help:    "interval between each refresh (ms)",
	})
	cycle := parser.Int("c", "cycle", &argparse.Options{
		Default: int(def.Cycle.Milliseconds()),
		Help:    "interval between each cycle (ms)",
	})
	pan := parser.Int("p", "pan-interval", &argparse.Options{
		Default: int(def.Pan.Milliseconds()),
		Help:    "interval between camera moves while an arrow key is held (ms)",
	})
	seed := parser.Int("s", "seed", &argparse.Options{
		Default: 0,
		Help:    "seed for the initial ant placement, 0 picks one from the clock",
	})
	help := parser.Flag("h", "help", &argparse.Options{Help: "display this help"})

	if err := parser.Parse(args); err != nil {
		return nil, err
	}
	if *help {
		fmt.Fprint(out, parser.Usage(nil))
		return nil, ErrHelp
	}

	cfg := &Config{Seed: int64(*seed)}
	var err error
	if cfg.Map, err = parseSize(*mapSize); err != nil {
		return nil, fmt.Errorf("invalid map size syntax: %w", err)
	}
	if cfg.Map.Empty() {
		return nil, ErrEmptyMap
	}
	if err := checkMap(cfg.Map); err != nil {
		return nil, err
	}
	if cfg.Window, err = parseSize(*windowSize); err != nil {
		return nil, fmt.Errorf("invalid window resolution syntax: %w", err)
	}
	if cfg.Window.Empty() {
		return nil, ErrEmptyWindow
	}
	if err := checkWindow(cfg.Window); err != nil {
		return nil, err
	}
	if cfg.Refresh, err = interval("-r", *refresh); err != nil {
		return nil, err
	}
	if cfg.Cycle, err = interval("-c", *cycle); err != nil {
		return nil, err
	}
	if cfg.Pan, err = interval("-p", *pan); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseSize(s string) (core.Size, error) {
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return core.Size{}, fmt.Errorf("%q: %w", s, ErrBadSize)
	}
	w, errW := strconv.Atoi(m[1])
	h, errH := strconv.Atoi(m[2])
	if err := errors.Join(errW, errH); err != nil {
		return core.Size{}, fmt.Errorf("%q: %w", s, ErrBadSize)
	}
	return core.Size{W: w, H: h}, nil
}

// checkMap rejects maps whose cell count exceeds MaxMapCells. The product is
// never computed so huge sides cannot overflow.
func checkMap(s core.Size) error {
	if s.W > MaxMapCells/s.H {
		return fmt.Errorf("map %s exceeds %d cells: %w", formatSize(s), MaxMapCells, ErrTooLarge)
	}
	return nil
}

func checkWindow(s core.Size) error {
	if s.W > MaxWindowSide || s.H > MaxWindowSide {
		return fmt.Errorf("window %s exceeds %dx%d: %w", formatSize(s), MaxWindowSide, MaxWindowSide, ErrTooLarge)
	}
	return nil
}

func formatSize(s core.Size) string { return fmt.Sprintf("%dx%d", s.W, s.H) }

func interval(flag string, ms int) (time.Duration, error) {
	if ms < 0 || int64(ms) > MaxInterval.Milliseconds() {
		return 0, fmt.Errorf("bad value for '%s': %w", flag, ErrBadInterval)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
