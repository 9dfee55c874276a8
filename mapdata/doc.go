// Package mapdata loads road maps into *core.Graph values.
//
// Maps are YAML edge lists (see Load). Two-way roads are stored as reciprocal
// arcs on a directed graph, so a forward search follows Neighbors and a
// backward search follows InNeighbors over the same data.
//
// Romania returns the embedded 20-city sample map.
package mapdata
