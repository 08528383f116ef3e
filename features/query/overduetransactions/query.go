package overduetransactions

import (
	"time"

	"github.com/openshelf/circulation-go/core"
)

const (
	queryType = "OverdueTransactions"
)

// Query represents the intent to list overdue loans as of a given time.
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
