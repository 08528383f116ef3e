// Package addfine implements the Add Fine For Member use case.
//
// When the member already has fines on record, the amount tops up the first
// fine in the member's list instead of creating a new one; either way the
// resulting amount is capped at the automatic-fine maximum of 300. The
// top-up targets the first fine regardless of its status, which mirrors the
// long-standing behavior of this operation.
package addfine
