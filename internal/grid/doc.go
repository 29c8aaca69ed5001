// Package grid provides the uniform rectangular mesh and the dense scalar
// field type that the rest of the engine operates on.
//
//   - [Domain]: rectangular bounds in x and y
//   - [Field]: row-major (ny, nx) scalar array with reduction helpers
//   - [NewUniform]: evenly spaced mesh with broadcast coordinate fields
//
// Meshes are built once per request and never mutated afterwards; every
// consumer treats X, Y and the axis vectors as read-only.
package grid
