package memberactivity

import (
	"github.com/openshelf/circulation-go/core"
)

// ProjectActivity assembles the activity view from the loaded rows, keeping
// only Pending fines. This is a pure function with no side effects.
func ProjectActivity(
	member core.Member,
	openLoans []core.BorrowingTransaction,
	fines []core.Fine,
	notifications []core.Notification,
) Activity {

	pending := make([]core.Fine, 0, len(fines))

	var total core.Rupees
	for _, fine := range fines {
		if fine.IsPending() {
			pending = append(pending, fine)
			total += fine.Amount
		}
	}

	return Activity{
		Member:        member,
		OpenLoans:     openLoans,
		PendingFines:  pending,
		TotalPending:  total,
		Notifications: notifications,
	}
}
