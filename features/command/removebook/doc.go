// Package removebook implements the Remove Book use case.
//
// A catalog record can only be removed while no outstanding loan references it.
package removebook
