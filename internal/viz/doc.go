// Package viz is the terminal rendering backend for quadrotor animations.
//
// The backend implements the Bubble Tea framework:
//
//   - [Model]: owns the timer, registers an anim.Driver with it and redraws
//     every frame the driver hands back
//   - [Canvas]: Braille-based pixel canvas with per-cell color and text
//   - Theme selection with 5 built-in color schemes
//
// The viewport is drawn with equal scale on both axes and a dotted grid.
//
// # Key Bindings
//
//	Space - Pause/Resume animation
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
