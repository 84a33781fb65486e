package openscad

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/philipparndt/cadoverlay/pkg/stl"
)

// ErrNotInstalled is returned when the openscad binary is not on PATH
var ErrNotInstalled = errors.New("openscad not found in PATH")

// Matches: use <file.scad>, include <./file.scad>
var depRegex = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// IsSource reports whether path names an OpenSCAD source file
func IsSource(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".scad")
}

// Renderer renders OpenSCAD sources into STL models
type Renderer struct {
	workDir string
	binary  string
}

// NewRenderer creates a renderer resolving library paths against workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{workDir: workDir, binary: "openscad"}
}

// Render runs openscad on scadFile and parses the result
func (r *Renderer) Render(ctx context.Context, scadFile string) (*stl.Model, error) {
	bin, err := exec.LookPath(r.binary)
	if err != nil {
		return nil, ErrNotInstalled
	}

	out, err := os.CreateTemp("", "cadoverlay-*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	out.Close()
	defer os.Remove(out.Name())

	cmd := exec.CommandContext(ctx, bin, "-o", out.Name(), r.abs(scadFile))
	cmd.Dir = r.workDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("failed to render %s: %w", scadFile, err)
		}
		return nil, fmt.Errorf("failed to render %s: %w: %s", scadFile, err, msg)
	}

	model, err := stl.Parse(out.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered %s: %w", scadFile, err)
	}
	if model.Name == "" {
		model.Name = strings.TrimSuffix(filepath.Base(scadFile), filepath.Ext(scadFile))
	}
	return model, nil
}

// Dependencies returns scadFile and every file it pulls in through use or
// include, transitively, as absolute paths
func (r *Renderer) Dependencies(scadFile string) ([]string, error) {
	visited := make(map[string]bool)
	var deps []string
	if err := r.collect(r.abs(scadFile), visited, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

func (r *Renderer) collect(file string, visited map[string]bool, deps *[]string) error {
	if visited[file] {
		return nil
	}
	visited[file] = true
	*deps = append(*deps, file)

	direct, err := r.parse(file)
	if err != nil {
		return err
	}
	for _, dep := range direct {
		if err := r.collect(dep, visited, deps); err != nil {
			return err
		}
	}
	return nil
}

// parse lists the use/include targets of a single file
func (r *Renderer) parse(file string) ([]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	var deps []string
	dir := filepath.Dir(file)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if m := depRegex.FindStringSubmatch(line); len(m) > 1 {
			deps = append(deps, r.resolve(m[1], dir))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return deps, nil
}

// resolve looks a dependency up next to the including file first, then in
// the work directory
func (r *Renderer) resolve(dep, dir string) string {
	if strings.HasPrefix(dep, "./") || strings.HasPrefix(dep, "../") {
		return filepath.Clean(filepath.Join(dir, dep))
	}
	local := filepath.Join(dir, dep)
	if _, err := os.Stat(local); err == nil {
		return filepath.Clean(local)
	}
	return filepath.Clean(filepath.Join(r.workDir, dep))
}

func (r *Renderer) abs(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(r.workDir, file)
}
