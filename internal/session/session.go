// Package session wires a scene file into a running positioning session
// shared by the viewers and the headless commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/philipparndt/cadoverlay/internal/annotation"
	"github.com/philipparndt/cadoverlay/internal/autoposition"
	"github.com/philipparndt/cadoverlay/internal/config"
	"github.com/philipparndt/cadoverlay/internal/overlay"
	"github.com/philipparndt/cadoverlay/internal/pinned"
	"github.com/philipparndt/cadoverlay/internal/scene"
	"github.com/philipparndt/cadoverlay/pkg/gridlayout"
	"github.com/philipparndt/cadoverlay/pkg/openscad"
	"github.com/philipparndt/cadoverlay/pkg/stl"
)

// Session is an open scene: the model, its annotations and the mounted
// overlay, driven by one positioning engine. It is not safe for concurrent
// use; every method runs on the render thread.
type Session struct {
	Config  *config.Config
	Scene   *scene.Scene
	Engine  *autoposition.Engine
	Store   *annotation.Store
	Overlay *overlay.Container

	logger     *log.Logger
	frameTime  float32
	modelFiles map[string]bool
	width      float64
	height     float64
}

// Open loads the model and annotations named by cfg and mounts the overlay
func Open(cfg *config.Config, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}

	model, err := loadModel(cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", cfg.Model, err)
	}
	store, err := annotation.Open(cfg.Annotations)
	if err != nil {
		return nil, err
	}

	sc := scene.FromConfig(cfg, model)
	engine := autoposition.NewEngine(autoposition.WithLogger(logger), autoposition.WithScene(sc))

	fps := cfg.Layout.FPS
	if fps <= 0 {
		fps = autoposition.DefaultFPS
	}

	s := &Session{
		Config:    cfg,
		Scene:     sc,
		Engine:    engine,
		Store:     store,
		Overlay:   overlay.NewContainer(engine, logger),
		logger:    logger,
		frameTime: 1 / float32(fps),
	}
	s.Overlay.OnLayoutChange = s.persistLayout
	s.Resize(float64(cfg.Viewport.Width), float64(cfg.Viewport.Height))
	s.Overlay.Reconcile(store.All())

	logger.Info("scene opened",
		"model", cfg.Model,
		"triangles", model.TriangleCount(),
		"annotations", len(store.All()),
		"anchors", len(cfg.Anchors))
	return s, nil
}

// Model returns the loaded model
func (s *Session) Model() *stl.Model {
	return s.Scene.Model()
}

// Size returns the panel size
func (s *Session) Size() (float64, float64) {
	return s.width, s.height
}

// Resize propagates a new panel size to the camera, the engine and the dock
func (s *Session) Resize(width, height float64) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.Scene.SetViewport(width, height)
	s.Engine.OnPanelResize(autoposition.Size{Width: width, Height: height})
	s.Overlay.Layout(width)
	s.logger.Debug("panel resized", "width", width, "height", height)
}

// UpdatePosition runs one tick at the configured frame rate. It makes the
// session usable as a FrameLoop or RenderHook ticker.
func (s *Session) UpdatePosition() {
	s.Advance(s.frameTime)
}

// Advance runs one positioning tick and then moves the overlay animations
// forward by dt seconds
func (s *Session) Advance(dt float32) {
	s.Engine.UpdatePosition()
	s.Overlay.Tick(dt)
}

// Settle runs ticks positioning ticks as fast as possible. before runs
// ahead of each tick and may be nil. Nothing runs when ticks is not
// positive.
func (s *Session) Settle(ctx context.Context, ticks int, before func()) error {
	if ticks <= 0 {
		return nil
	}
	loop := autoposition.NewFrameLoop(s, s.Config.Layout.FPS).Unthrottled()
	loop.Limit = ticks
	loop.Before = before
	err := loop.Run(ctx)
	s.logger.Debug("settled", "ticks", loop.Frames())
	return err
}

// Pin docks the label of uid at the grid cell under its current position.
// An anchor without a floating position, because it has no annotation yet
// or its label was never placed, is docked in the first free cell instead.
func (s *Session) Pin(uid string) error {
	if s.unpositioned(uid) {
		s.Store.PinWithNoPosition(uid)
		s.logger.Debug("pinned without position", "id", uid)
		return s.commit()
	}
	if err := pinned.Pin(s.Store, s.Engine, uid, s.width); err != nil {
		return err
	}
	return s.commit()
}

// unpositioned reports whether uid is an anchor of the scene that has no
// placed floating box
func (s *Session) unpositioned(uid string) bool {
	if _, ok := s.Scene.Marker(uid); !ok {
		return false
	}
	if _, err := s.Store.Get(uid); err != nil {
		return true
	}
	box, ok := s.Engine.Box(uid)
	return !ok || !box.Initialized
}

// Unpin turns the window of uid back into a label
func (s *Session) Unpin(uid string) error {
	if err := pinned.Unpin(s.Store, uid); err != nil {
		return err
	}
	return s.commit()
}

// TogglePin pins a label or unpins a window
func (s *Session) TogglePin(uid string) error {
	an, err := s.Store.Get(uid)
	if errors.Is(err, annotation.ErrNotFound) && s.unpositioned(uid) {
		return s.Pin(uid)
	}
	if err != nil {
		return err
	}
	if an.IsPinnedWindow() {
		return s.Unpin(uid)
	}
	return s.Pin(uid)
}

// Hide closes the label or window of uid
func (s *Session) Hide(uid string) error {
	if err := pinned.Hide(s.Store, uid); err != nil {
		return err
	}
	return s.commit()
}

// Show turns uid into a floating label. An anchor without an annotation
// gets a new one.
func (s *Session) Show(uid string) error {
	err := pinned.Unpin(s.Store, uid)
	if errors.Is(err, annotation.ErrNotFound) {
		if _, ok := s.Scene.Marker(uid); ok {
			s.Store.Put(annotation.Settings{UID: uid, Display: annotation.DisplayLabel})
			err = nil
		}
	}
	if err != nil {
		return err
	}
	return s.commit()
}

// ReloadAnnotations rereads the settings file and reconciles the overlay
func (s *Session) ReloadAnnotations() error {
	if err := s.Store.Reload(); err != nil {
		return err
	}
	s.Overlay.Reconcile(s.Store.All())
	s.logger.Info("annotations reloaded", "count", len(s.Store.All()))
	return nil
}

// ReloadScene rereads the scene file and moves, adds or removes anchors.
// Model, viewport and camera settings only apply when opening a scene.
func (s *Session) ReloadScene() error {
	if s.Config.Path() == "" {
		return nil
	}
	cfg, err := config.Load(s.Config.Path())
	if err != nil {
		return err
	}
	s.Scene.SyncAnchors(cfg.Anchors)
	s.Config.Anchors = cfg.Anchors
	s.logger.Info("anchors reloaded", "count", len(cfg.Anchors))
	return nil
}

// ReloadModel rereads the model and keeps the current camera orientation
func (s *Session) ReloadModel() error {
	model, err := loadModel(s.Config.Model)
	if err != nil {
		return fmt.Errorf("failed to reload model %s: %w", s.Config.Model, err)
	}

	prev := s.Scene.ViewCamera()
	s.Scene.SetModel(model)
	if cam := s.Scene.ViewCamera(); cam != nil && prev != nil {
		cam.Distance = prev.Distance
		cam.FOV = prev.FOV
		cam.RotationX = prev.RotationX
		cam.RotationY = prev.RotationY
		cam.UpdatePosition()
	}
	s.logger.Info("model reloaded", "triangles", model.TriangleCount())
	return nil
}

// loadModel reads an STL file or renders an OpenSCAD source
func loadModel(path string) (*stl.Model, error) {
	if openscad.IsSource(path) {
		return openscad.NewRenderer(filepath.Dir(path)).Render(context.Background(), path)
	}
	return stl.Parse(path)
}

// Close unmounts the overlay, which empties the engine
func (s *Session) Close() {
	s.Overlay.Close()
}

// commit saves the store and remounts the overlay from it
func (s *Session) commit() error {
	if err := s.Store.Save(); err != nil {
		return err
	}
	s.Overlay.Reconcile(s.Store.All())
	return nil
}

// persistLayout stores the dock layout after a drag or resize
func (s *Session) persistLayout(layout gridlayout.Layout) {
	if !s.Store.ApplyLayout(layout) {
		return
	}
	if err := s.Store.Save(); err != nil {
		s.logger.Error("failed to save layout", "err", err)
	}
}
