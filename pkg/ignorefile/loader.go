package ignorefile

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/orbit-deploy/orbitignore/pkg/ignore"
)

// DefaultName is the ignore file consulted in each deployment root.
const DefaultName = ".orbitignore"

// Options configures how ignore rules are loaded for a root.
type Options struct {
	// Name overrides the ignore file name. Empty means DefaultName.
	Name string

	// BasePatterns are compiled before the ignore file's own rules, so
	// per-root rules can override them (including by negation). Used for
	// platform default exclusions and config-supplied patterns.
	BasePatterns []string
}

// Load reads and compiles the ignore file at root.
// A missing file yields a nil spec, which matches nothing.
func Load(root string) (*ignore.Spec, error) {
	return LoadWithOptions(root, Options{})
}

// LoadWithOptions reads and compiles the ignore file at root together
// with any base patterns. The returned spec is nil only when there is no
// ignore file and no base patterns.
func LoadWithOptions(root string, opts Options) (*ignore.Spec, error) {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}
	path := filepath.Join(root, name)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no ignore file in root",
				slog.String("root", root),
				slog.String("name", name))
			if len(opts.BasePatterns) == 0 {
				return nil, nil
			}
			return ignore.CompileLines(opts.BasePatterns), nil
		}
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}

	if len(opts.BasePatterns) == 0 {
		spec := ignore.Compile(content)
		slog.Debug("loaded ignore file",
			slog.String("path", path),
			slog.Int("rules", spec.RuleCount()))
		return spec, nil
	}

	// Base patterns first, file rules after: the file gets the last word.
	var buf bytes.Buffer
	for _, p := range opts.BasePatterns {
		buf.WriteString(p)
		buf.WriteByte('\n')
	}
	buf.Write(content)

	spec := ignore.Compile(buf.Bytes())
	slog.Debug("loaded ignore file",
		slog.String("path", path),
		slog.Int("base_patterns", len(opts.BasePatterns)),
		slog.Int("rules", spec.RuleCount()))
	return spec, nil
}

// LoadWithConfig loads the project config at root and composes its
// package excludes with the root's ignore file.
func LoadWithConfig(root string) (*ignore.Spec, error) {
	cfg, err := LoadConfig(root)
	if err != nil {
		return nil, err
	}

	opts := Options{}
	if cfg != nil {
		opts.Name = cfg.Package.IgnoreFile
		opts.BasePatterns = cfg.Package.Exclude
	}
	return LoadWithOptions(root, opts)
}
