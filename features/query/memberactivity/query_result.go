package memberactivity

import (
	"github.com/openshelf/circulation-go/core"
)

// Activity is the query result: the member's profile together with their
// open loans, Pending fines and recorded notifications.
type Activity struct {
	Member        core.Member
	OpenLoans     []core.BorrowingTransaction
	PendingFines  []core.Fine
	TotalPending  core.Rupees
	Notifications []core.Notification
}
