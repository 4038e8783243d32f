/*
Package ports defines the driven interfaces of the view-python core.

Adapters (memory, file, redis) implement these interfaces so the engine and
its transport layers stay decoupled from any concrete storage backend.
*/
package ports
