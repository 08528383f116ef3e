// Package shell defines the ports between the pure rule evaluation in the
// feature packages and the outside world: the per-entity store interfaces
// implemented by the storage engines, and the observability interfaces
// implemented by the logging and metrics adapters.
package shell
