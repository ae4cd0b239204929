// Package anim drives the per-tick animation of a set of vehicles.
//
// A [Driver] owns the vehicles and the scene they are drawn into. The
// rendering backend registers it with a timer and calls [Driver.Initialize]
// once, then [Driver.OnTick] for every frame. Each call returns a fresh
// [render.Frame] the backend may keep but must not modify.
//
// # Phases
//
//	PhaseInit    - constructed, not yet initialized
//	PhaseWarmup  - frames up to the warmup threshold are no-ops
//	PhaseRunning - vehicles advance and are redrawn every frame
//
// # Traces
//
// Body, arm and label primitives are rebuilt from scratch every running
// tick. Trace segments accumulate across ticks and are trimmed in blocks:
// once the count exceeds the ceiling, the oldest block is dropped. The count
// can stay above the ceiling for a few ticks before a later trim catches up.
package anim
