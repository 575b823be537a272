// Package config loads the optional panelkit.yaml configuration: app
// metadata plus the interface style defaults (font, font size, label
// width) applied when a UI context is created.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-panelkit/panelkit/pkg/ui"
)

const (
	// DefaultFontSize is used when panelkit.yaml omits the font size.
	DefaultFontSize = 16
)

// Config represents the optional panelkit.yaml configuration.
type Config struct {
	App   AppConfig   `yaml:"app"`
	Style StyleConfig `yaml:"style"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// StyleConfig contains interface style defaults.
type StyleConfig struct {
	// Font is the name of the interface font. Resolving the name to a
	// font face is the host application's concern.
	Font string `yaml:"font,omitempty"`
	// FontSize is the interface font size in points.
	FontSize int `yaml:"font_size,omitempty"`
	// LabelWidth is the label column width in pixels.
	LabelWidth int `yaml:"label_width,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Font       string
	FontSize   int
	LabelWidth int
}

// LoadOptional reads panelkit.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "panelkit.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read panelkit.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse panelkit.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads panelkit.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	fontSize := cfg.Style.FontSize
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}

	labelWidth := cfg.Style.LabelWidth
	if labelWidth <= 0 {
		labelWidth = ui.DefaultLabelWidth
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Font:       strings.TrimSpace(cfg.Style.Font),
		FontSize:   fontSize,
		LabelWidth: labelWidth,
	}, nil
}

// Apply configures a UI context with the resolved style. The font name
// is not applied here; resolving it to a font face is left to the host,
// which calls ctx.SetFont itself.
func (r *Resolved) Apply(ctx *ui.Context) {
	ctx.SetFontSize(r.FontSize)
	ctx.SetLabelWidth(r.LabelWidth)
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "panelkit_app"
	}
	return base
}
