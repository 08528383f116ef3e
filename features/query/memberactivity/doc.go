// Package memberactivity implements the Member Activity query: one member's
// profile, open loans, pending fines and notifications in a single view.
package memberactivity
