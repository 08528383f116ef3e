package approachingfines

import (
	"time"

	"github.com/openshelf/circulation-go/core"
)

const (
	queryType = "ApproachingFines"
)

// Query represents the intent to preview upcoming fines as of a given time.
type Query struct {
	AsOf core.OccurredAtTS
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(asOf time.Time) Query {
	return Query{
		AsOf: core.ToOccurredAt(asOf),
	}
}
