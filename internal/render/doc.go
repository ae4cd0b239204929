// Package render derives drawable primitives from vehicle state.
//
// Every builder is a pure function of its arguments. The primitives are plain
// descriptors; rasterizing them is left to a backend such as the terminal
// canvas in package viz or the still-image writers in package export.
//
//   - [MotorLayout]: four motor centers of an X-frame quadrotor
//   - [Body], [Arms], [Label], [TraceSegment]: per-vehicle primitives
//   - [Frame]: the immutable set of primitives for one animation tick
package render
