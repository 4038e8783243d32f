/*
Package domain contains the core types shared across the view-python engine
and its adapters: notebook cells, the inferred dependency graph, execution
logs and run results.

These are plain structs with JSON tags. The transport layer serializes them
as-is; the engine never mutates a graph it was given.
*/
package domain
