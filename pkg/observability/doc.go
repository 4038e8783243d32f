/*
Package observability provides Prometheus instrumentation for the
view-python engine and its HTTP adapter.

Metrics are registered on a private registry owned by the Metrics value, so
tests and embedded engines never fight over the global default registry.
*/
package observability
