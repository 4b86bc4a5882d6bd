package graphica

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Font is a parsed TrueType font with a cache of faces by pixel size.
type Font struct {
	Name string

	ttf   *truetype.Font
	mu    sync.Mutex
	faces map[int]font.Face
}

func newFont(name string, data []byte) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	return &Font{Name: name, ttf: ttf, faces: make(map[int]font.Face)}, nil
}

// Face returns a face whose em size is px pixels.
func (f *Font) Face(px int) font.Face {
	if px < 1 {
		px = 1
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[px]; ok {
		return face
	}
	// At 72 DPI a point is a pixel.
	face := truetype.NewFace(f.ttf, &truetype.Options{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	f.faces[px] = face
	return face
}

var builtinFonts = map[string][]byte{
	"Regular":         goregular.TTF,
	"Bold":            gobold.TTF,
	"Italic":          goitalic.TTF,
	"BoldItalic":      gobolditalic.TTF,
	"Medium":          gomedium.TTF,
	"MediumItalic":    gomediumitalic.TTF,
	"Mono":            gomono.TTF,
	"MonoBold":        gomonobold.TTF,
	"MonoItalic":      gomonoitalic.TTF,
	"MonoBoldItalic":  gomonobolditalic.TTF,
	"SmallCaps":       gosmallcaps.TTF,
	"SmallCapsItalic": gosmallcapsitalic.TTF,
}

var fonts = struct {
	sync.Mutex
	byName map[string]*Font
	dirs   []string
}{byName: make(map[string]*Font)}

// RegisterFont makes f available to FontByName under name.
func RegisterFont(name string, f *Font) {
	fonts.Lock()
	defer fonts.Unlock()
	fonts.byName[strings.ToLower(name)] = f
}

// AddFontDir adds a directory searched by FontByName for "<name>.ttf" and
// "<name>.otf" files.
func AddFontDir(dir string) {
	fonts.Lock()
	defer fonts.Unlock()
	fonts.dirs = append(fonts.dirs, dir)
}

// LoadFont parses the TrueType file at path.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := newFont(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), data)
	if err != nil {
		return nil, err
	}
	Logger().Debug("font loaded", "path", path)
	return f, nil
}

// FontByName resolves a registered font, one of the built-in Go fonts
// (Regular, Bold, Mono, ...), a file in a font directory, or a file path.
func FontByName(name string) (*Font, error) {
	key := strings.ToLower(name)

	fonts.Lock()
	if f, ok := fonts.byName[key]; ok {
		fonts.Unlock()
		return f, nil
	}
	dirs := append([]string(nil), fonts.dirs...)
	fonts.Unlock()

	var f *Font
	var err error
	if data, ok := lookupBuiltin(key); ok {
		f, err = newFont(name, data)
	} else if path, ok := findFontFile(name, dirs); ok {
		f, err = LoadFont(path)
	} else {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFont, name)
	}
	if err != nil {
		return nil, err
	}
	RegisterFont(name, f)
	return f, nil
}

func lookupBuiltin(key string) ([]byte, bool) {
	for name, data := range builtinFonts {
		if strings.ToLower(name) == key {
			return data, true
		}
	}
	return nil, false
}

func findFontFile(name string, dirs []string) (string, bool) {
	if ext := strings.ToLower(filepath.Ext(name)); ext == ".ttf" || ext == ".otf" {
		if _, err := os.Stat(name); err == nil {
			return name, true
		}
	}
	for _, dir := range dirs {
		for _, ext := range []string{".ttf", ".otf"} {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}
	return "", false
}

// DefaultFont returns the built-in regular font.
func DefaultFont() *Font {
	f, err := FontByName(defaultFontName)
	if err != nil {
		// The embedded font always parses.
		panic(err)
	}
	return f
}

// FontNames lists the built-in font names.
func FontNames() []string {
	names := make([]string, 0, len(builtinFonts))
	for name := range builtinFonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
