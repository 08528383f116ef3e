// Package core contains the pure domain model of the circulation system:
// the catalog, member, loan, fine and notification entities, the closed
// status enumerations, the fine policy arithmetic, and the error taxonomy.
//
// Nothing in this package performs I/O. All rule evaluation over this model
// lives in the pure Decide functions of the feature packages.
package core
