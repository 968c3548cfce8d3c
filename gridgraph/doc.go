// Package gridgraph adapts 2D grids to the search packages.
//
// A GridGraph is a rectangular grid of integer cell values, built from a
// [][]int with NewGridGraph or from ASCII text with Parse. It implements
// core.Graph[Point]: moving into a cell costs that cell's value, and cells
// whose value is below LandThreshold are walls. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - A unit-weight view for breadth-first search (Unit)
//   - An admissible A* heuristic (Heuristic)
//   - n×n tiling with value wrap-around (Tile)
//   - Connected components of passable cells (Components)
//   - Cheapest wall conversion between components (ExpandIsland)
//   - Text rendering of a path, optionally colored (Render)
//
// Plane is an unbounded alternative: every step costs 1 and only an explicit
// set of points is blocked.
//
// Point, Vector and their helpers give the grid its geometry. Points print and
// parse as "x,y".
package gridgraph
