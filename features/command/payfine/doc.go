// Package payfine implements the Pay Fine use case.
//
// Payment must match the fine amount exactly; partial and excess payments are
// rejected. A successful payment marks the fine Paid and records exactly one
// payment notification.
package payfine
