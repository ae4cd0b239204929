// Package pose provides the planar poses a vehicle follows.
//
//   - [Pose]: position and heading at one instant
//   - [Sequence]: a fixed, cyclically indexed list of poses
//   - [Sweep] and [Orbit]: simple pose generators used by scenarios
//
// A [Sequence] is read-only after construction and never empty.
package pose
