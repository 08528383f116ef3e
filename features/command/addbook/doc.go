// Package addbook implements the Add Book use case.
//
// Adding a title whose ISBN already exists in the catalog increments the
// available copy count of the existing record instead of inserting a
// duplicate row.
package addbook
