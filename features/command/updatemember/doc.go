// Package updatemember implements the Update Member use case.
//
// Profile attributes (name, email, phone, address) are editable; membership
// status is not - status only changes through the circulation rules.
package updatemember
