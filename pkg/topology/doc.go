// Package topology counts connected structures in an occupancy grid:
// solid components and fully enclosed empty cavities (bubbles), under a
// selectable 6/18/26 adjacency rule. All counting runs on a generic
// breadth-first region search parameterized by an adjacency kernel and a
// membership predicate.
package topology
