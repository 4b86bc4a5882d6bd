package graphica

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Config holds window settings. LoadConfig reads them from ~/.graphicarc.
type Config struct {
	Title      string
	Width      int
	Height     int
	Origin     Origin
	Background color.Color
	Resizable  bool
	FPS        int
	FontDir    string
	LogLevel   slog.Level
}

func DefaultConfig() Config {
	return Config{
		Title:      defaultTitle,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Origin:     OriginTopLeft,
		Background: colourBlack,
		Resizable:  true,
		FPS:        defaultFPS,
		LogLevel:   slog.LevelWarn,
	}
}

// LoadConfig reads ~/.graphicarc over the defaults. A missing file is not an
// error.
func LoadConfig() (Config, error) {
	config := DefaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config, nil
	}

	file, err := os.Open(filepath.Join(homeDir, ".graphicarc"))
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	if err := config.Parse(file, homeDir); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

// Parse reads key=value lines from r into c. Blank lines and lines starting
// with # are skipped. Unknown keys are ignored.
func (c *Config) Parse(r io.Reader, homeDir string) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		var err error
		switch strings.ToLower(key) {
		case "title", "name":
			c.Title = value
		case "width":
			c.Width, err = strconv.Atoi(value)
		case "height":
			c.Height, err = strconv.Atoi(value)
		case "size":
			c.Width, c.Height, err = parseSize(value)
		case "origin":
			c.Origin, err = ParseOrigin(value)
		case "background", "colour", "color":
			c.Background, err = ParseColour(value)
		case "resizable":
			c.Resizable = strings.ToLower(value) == "true"
		case "fps":
			c.FPS, err = strconv.Atoi(value)
		case "fontdir", "font_dir", "fonts":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			c.FontDir = value
		case "loglevel", "log_level", "log":
			err = c.LogLevel.UnmarshalText([]byte(value))
		}
		if err != nil {
			return fmt.Errorf("config line %d (%s): %w", lineNo, key, err)
		}
	}
	return scanner.Err()
}

func parseSize(value string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(value), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q is not WIDTHxHEIGHT", value)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return 0, 0, err
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// ParseColour accepts "#rrggbb" or "r,g,b".
func ParseColour(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, err
		}
		r, g, b := c.RGB255()
		return color.RGBA{r, g, b, 255}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("colour %q is neither #rrggbb nor r,g,b", s)
	}
	var rgb [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("colour %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 255}, nil
}

// Option changes a Config before a window opens.
type Option func(*windowOptions)

type windowOptions struct {
	config Config
	driver Driver
	logger *slog.Logger
}

func WithTitle(title string) Option {
	return func(o *windowOptions) { o.config.Title = title }
}

func WithSize(w, h int) Option {
	return func(o *windowOptions) { o.config.Width, o.config.Height = w, h }
}

func WithOrigin(origin Origin) Option {
	return func(o *windowOptions) { o.config.Origin = origin }
}

func WithBackground(c color.Color) Option {
	return func(o *windowOptions) { o.config.Background = c }
}

func WithResizable(resizable bool) Option {
	return func(o *windowOptions) { o.config.Resizable = resizable }
}

func WithFPS(fps int) Option {
	return func(o *windowOptions) { o.config.FPS = fps }
}

// WithDriver replaces the terminal driver, e.g. with NewHeadless for tests.
func WithDriver(d Driver) Option {
	return func(o *windowOptions) { o.driver = d }
}

// WithLogger calls SetLogger when the window opens.
func WithLogger(l *slog.Logger) Option {
	return func(o *windowOptions) { o.logger = l }
}
