// Package approachingfines implements the Approaching Fines query.
//
// For every outstanding loan it reports the days remaining until the due
// date; loans already past due get a placeholder fine estimate at the
// estimator's daily rate of 15. The estimate is advisory only - the rate
// differs from the 10-per-day rate the fine calculation actually uses.
package approachingfines
