// Package voxel defines the binary occupancy grid that the rest of the
// system operates on, together with loading and validation of raw input
// data. A grid is built once per analysis run and treated as read-only
// afterwards.
package voxel
