// Package registermember implements the Register Member use case.
//
// Email addresses are unique across member accounts; newly registered
// members start Active.
package registermember
