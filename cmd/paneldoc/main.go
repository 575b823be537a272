// Package main provides a documentation generator for panelkit.
// It generates a markdown API reference for the public packages from
// Go source using go/doc.
package main

import (
	"fmt"
	"go/doc"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Package represents a Go package to document.
type Package struct {
	Name     string
	Path     string
	Position int
}

// Packages to document (public-facing), in order.
var packages = []Package{
	{Name: "ui", Path: "pkg/ui", Position: 1},
	{Name: "container", Path: "pkg/container", Position: 2},
	{Name: "driver", Path: "pkg/driver", Position: 3},
	{Name: "errors", Path: "pkg/errors", Position: 4},
	{Name: "config", Path: "pkg/config", Position: 5},
	{Name: "testing", Path: "pkg/testing", Position: 6},
}

func main() {
	// Find repository root (where go.mod is)
	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}

	apiDir := filepath.Join(root, "docs", "api")
	if err := os.MkdirAll(apiDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating api directory: %v\n", err)
		os.Exit(1)
	}

	for _, pkg := range packages {
		if err := generate(root, apiDir, pkg); err != nil {
			fmt.Fprintf(os.Stderr, "Error documenting %s: %v\n", pkg.Name, err)
			os.Exit(1)
		}
		fmt.Printf("Documented %s\n", pkg.Path)
	}
}

func findRepoRoot() (string, error) {
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
			return "", fmt.Errorf("no go.mod found")
		}
		dir = parent
	}
}

func generate(root, apiDir string, pkg Package) error {
	fset := token.NewFileSet()
	parsed, err := parser.ParseDir(fset, filepath.Join(root, pkg.Path), func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ParseComments)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(parsed))
	for name := range parsed {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return fmt.Errorf("no packages in %s", pkg.Path)
	}

	d := doc.New(parsed[names[0]], "./"+pkg.Path, 0)

	var sb strings.Builder
	fmt.Fprintf(&sb, "---\nsidebar_position: %d\n---\n\n", pkg.Position)
	fmt.Fprintf(&sb, "# %s\n\n", pkg.Name)
	if d.Doc != "" {
		fmt.Fprintf(&sb, "%s\n", d.Doc)
	}

	if len(d.Consts) > 0 {
		sb.WriteString("\n## Constants\n\n")
		for _, c := range d.Consts {
			writeDecl(&sb, c.Doc, c.Names)
		}
	}

	if len(d.Funcs) > 0 {
		sb.WriteString("\n## Functions\n\n")
		for _, f := range d.Funcs {
			fmt.Fprintf(&sb, "### %s\n\n", f.Name)
			if f.Doc != "" {
				fmt.Fprintf(&sb, "%s\n\n", f.Doc)
			}
		}
	}

	if len(d.Types) > 0 {
		sb.WriteString("\n## Types\n\n")
		for _, typ := range d.Types {
			fmt.Fprintf(&sb, "### %s\n\n", typ.Name)
			if typ.Doc != "" {
				fmt.Fprintf(&sb, "%s\n\n", typ.Doc)
			}
			for _, m := range typ.Methods {
				fmt.Fprintf(&sb, "#### %s.%s\n\n", typ.Name, m.Name)
				if m.Doc != "" {
					fmt.Fprintf(&sb, "%s\n\n", m.Doc)
				}
			}
		}
	}

	return os.WriteFile(filepath.Join(apiDir, pkg.Name+".md"), []byte(sb.String()), 0644)
}

func writeDecl(sb *strings.Builder, docText string, names []string) {
	if len(names) > 0 {
		fmt.Fprintf(sb, "- `%s`", strings.Join(names, "`, `"))
		if docText != "" {
			fmt.Fprintf(sb, " — %s", strings.TrimSpace(docText))
		}
		sb.WriteString("\n")
	}
}
