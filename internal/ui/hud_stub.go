//go:build !ebiten

package ui

import "life-engine/internal/engine"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Update never raises a command in the headless build.
func (h *HUD) Update(engine.Stats, int, int) Command { return CommandNone }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, engine.Stats, int, int) {}
