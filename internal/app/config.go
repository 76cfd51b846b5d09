package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	defaultTickLimit = 240
	defaultWarmUp    = 5
	defaultInitProb  = 12
	defaultFPS       = 30
	defaultScale     = 4
)

// ErrConfigFormat reports a config file whose extension names no known format.
var ErrConfigFormat = errors.New("unsupported config format")

// Config holds the run parameters. It is resolved once at startup and not
// modified afterwards.
type Config struct {
	// Colors is the palette the color index walks through.
	Colors []int
	// TickLimit is the number of generations before a forced reseed; 0
	// disables automatic reseeding.
	TickLimit int
	// WarmUp generations are computed before the first frame after a seed.
	WarmUp int
	// InitProb is the percent chance a cell starts alive.
	InitProb int
	// FPS caps the frame rate; 0 runs unpaced.
	FPS int
	// Glyph draws live cells; 0 selects a reverse-video blank.
	Glyph rune
	Seed  int64
	Scale int

	ConfigPath string
	LogPath    string
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{
		Colors:    DefaultColors(),
		TickLimit: defaultTickLimit,
		WarmUp:    defaultWarmUp,
		InitProb:  defaultInitProb,
		FPS:       defaultFPS,
		Scale:     defaultScale,
	}
}

// DefaultColors returns the eight basic terminal colors.
func DefaultColors() []int {
	return []int{0, 1, 2, 3, 4, 5, 6, 7}
}

// Bind attaches the configuration to the provided FlagSet. Every option has a
// long name and, where one exists, its single-letter alias.
func (c *Config) Bind(fs *flag.FlagSet) {
	colors := (*colorListValue)(&c.Colors)
	fs.Var(colors, "color-list", "comma separated palette indices (default 0,...,7)")
	fs.Var(colors, "c", "shorthand for -color-list")

	intFlag(fs, &c.TickLimit, "ticks-limit", "r", "generations before reseeding, 0 never reseeds")
	intFlag(fs, &c.WarmUp, "init-ticks", "i", "generations advanced before the first frame")
	intFlag(fs, &c.InitProb, "init-prob", "p", "percent of cells alive after seeding [0-100]")
	intFlag(fs, &c.FPS, "fps", "f", "frames per second, 0 means no delay")

	glyph := (*glyphValue)(&c.Glyph)
	fs.Var(glyph, "char-alive", "character for live cells (default reverse-video blank)")
	fs.Var(glyph, "l", "shorthand for -char-alive")

	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for cell initialization, 0 picks one from the clock")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the window build")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "read options from a .toml, .yaml or .yml file")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "append lifecycle events to this file")
}

func intFlag(fs *flag.FlagSet, p *int, name, short, usage string) {
	v := (*atoiValue)(p)
	fs.Var(v, name, usage)
	fs.Var(v, short, "shorthand for -"+name)
}

// Parse binds c to fs, parses args and then fills every option not given on
// the command line from the config file, if one was named.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath != "" {
		doc, err := LoadFile(c.ConfigPath)
		if err != nil {
			return err
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		c.merge(doc, set)
	}
	if c.Scale <= 0 {
		c.Scale = defaultScale
	}
	return nil
}

// FileConfig mirrors the options a config file may set. Absent keys stay nil.
type FileConfig struct {
	Colors    []int   `toml:"color_list" yaml:"color_list"`
	TickLimit *int    `toml:"ticks_limit" yaml:"ticks_limit"`
	WarmUp    *int    `toml:"init_ticks" yaml:"init_ticks"`
	InitProb  *int    `toml:"init_prob" yaml:"init_prob"`
	FPS       *int    `toml:"fps" yaml:"fps"`
	Glyph     *string `toml:"char_alive" yaml:"char_alive"`
	Seed      *int64  `toml:"seed" yaml:"seed"`
	Scale     *int    `toml:"scale" yaml:"scale"`
}

// LoadFile reads a config file, choosing the decoder by extension.
func LoadFile(path string) (FileConfig, error) {
	var doc FileConfig
	buf, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(buf, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(buf, &doc)
	default:
		return doc, fmt.Errorf("%s: %w", path, ErrConfigFormat)
	}
	if err != nil {
		return doc, fmt.Errorf("%s parse failed: %w", path, err)
	}
	return doc, nil
}

func (c *Config) merge(doc FileConfig, set map[string]bool) {
	given := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}
	if len(doc.Colors) > 0 && !given("color-list", "c") {
		c.Colors = append([]int(nil), doc.Colors...)
	}
	if doc.TickLimit != nil && !given("ticks-limit", "r") {
		c.TickLimit = *doc.TickLimit
	}
	if doc.WarmUp != nil && !given("init-ticks", "i") {
		c.WarmUp = *doc.WarmUp
	}
	if doc.InitProb != nil && !given("init-prob", "p") {
		c.InitProb = *doc.InitProb
	}
	if doc.FPS != nil && !given("fps", "f") {
		c.FPS = *doc.FPS
	}
	if doc.Glyph != nil && !given("char-alive", "l") {
		c.Glyph = firstRune(*doc.Glyph)
	}
	if doc.Seed != nil && !given("seed") {
		c.Seed = *doc.Seed
	}
	if doc.Scale != nil && !given("scale") {
		c.Scale = *doc.Scale
	}
}

// Atoi converts the leading decimal digits of s, with an optional sign, and
// ignores the rest. Input without leading digits yields 0.
func Atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// ParseColorList splits a comma separated list of palette indices. An empty
// list, or one with an entry that is not a non-negative integer, yields the
// default palette.
func ParseColorList(s string) []int {
	if strings.TrimSpace(s) == "" {
		return DefaultColors()
	}
	parts := strings.Split(s, ",")
	colors := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return DefaultColors()
		}
		colors = append(colors, n)
	}
	return colors
}

func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

type atoiValue int

func (v *atoiValue) String() string { return strconv.Itoa(int(*v)) }

func (v *atoiValue) Set(s string) error {
	*v = atoiValue(Atoi(s))
	return nil
}

type colorListValue []int

func (v *colorListValue) String() string {
	parts := make([]string, len(*v))
	for i, c := range *v {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

func (v *colorListValue) Set(s string) error {
	*v = ParseColorList(s)
	return nil
}

type glyphValue rune

func (v *glyphValue) String() string {
	if *v == 0 {
		return ""
	}
	return string(rune(*v))
}

func (v *glyphValue) Set(s string) error {
	*v = glyphValue(firstRune(s))
	return nil
}
