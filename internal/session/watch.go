package session

import (
	"path/filepath"
	"time"

	"github.com/philipparndt/cadoverlay/pkg/openscad"
	"github.com/philipparndt/cadoverlay/pkg/watcher"
)

// reloadDebounce matches the editor save bursts seen on model exports
const reloadDebounce = 500 * time.Millisecond

// Watch starts watching the model, its OpenSCAD dependencies, the
// annotation file and the scene file. Changed paths are collected in changes for ApplyChanges
// on the render thread.
func (s *Session) Watch(changes *watcher.Changes) (*watcher.FileWatcher, error) {
	files, err := s.sourceFiles()
	if err != nil {
		return nil, err
	}

	fw, err := watcher.NewFileWatcher(reloadDebounce, s.logger)
	if err != nil {
		return nil, err
	}
	files = append(files, s.Config.Annotations)
	if s.Config.Path() != "" {
		files = append(files, s.Config.Path())
	}
	if err := fw.Watch(files, changes.Add); err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start()
	s.logger.Debug("watching for changes", "files", len(files))
	return fw, nil
}

// ApplyChanges reloads the files among paths. Failures are logged and the
// previous state stays in place.
func (s *Session) ApplyChanges(paths []string) {
	if s.modelFiles == nil {
		if _, err := s.sourceFiles(); err != nil {
			s.logger.Warn("failed to resolve model sources", "err", err)
		}
	}
	annotations := absPath(s.Config.Annotations)
	var sceneFile string
	if s.Config.Path() != "" {
		sceneFile = absPath(s.Config.Path())
	}

	reloadModel, reloadAnnotations, reloadScene := false, false, false
	for _, p := range paths {
		abs := absPath(p)
		switch {
		case s.modelFiles[abs]:
			reloadModel = true
		case abs == annotations:
			reloadAnnotations = true
		case abs == sceneFile:
			reloadScene = true
		}
	}

	if reloadScene {
		if err := s.ReloadScene(); err != nil {
			s.logger.Error("reload failed", "file", s.Config.Path(), "err", err)
		}
	}

	if reloadModel {
		if err := s.ReloadModel(); err != nil {
			s.logger.Error("reload failed", "file", s.Config.Model, "err", err)
		}
	}
	if reloadAnnotations {
		if err := s.ReloadAnnotations(); err != nil {
			s.logger.Error("reload failed", "file", s.Config.Annotations, "err", err)
		}
	}
}

// sourceFiles lists the files the model is built from and remembers them
// for ApplyChanges
func (s *Session) sourceFiles() ([]string, error) {
	files := []string{s.Config.Model}
	if openscad.IsSource(s.Config.Model) {
		deps, err := openscad.NewRenderer(filepath.Dir(s.Config.Model)).Dependencies(s.Config.Model)
		if err != nil {
			return nil, err
		}
		files = deps
	}

	s.modelFiles = make(map[string]bool, len(files))
	for _, f := range files {
		s.modelFiles[absPath(f)] = true
	}
	return files, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
