package memberactivity

import (
	"github.com/google/uuid"
)

const (
	queryType = "MemberActivity"
)

// Query represents the intent to view one member's circulation activity.
type Query struct {
	MemberID uuid.UUID
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// BuildQuery creates a new Query with the provided member ID.
func BuildQuery(memberID uuid.UUID) Query {
	return Query{
		MemberID: memberID,
	}
}
