package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message recorded as a side effect of engine
// events. There is no delivery channel; notifications are immutable once
// recorded and only ever deleted explicitly by an operator.
type Notification struct {
	ID       uuid.UUID
	MemberID uuid.UUID
	Message  string
	DateSent time.Time
}

// BuildNotification creates a new Notification.
func BuildNotification(
	id uuid.UUID,
	memberID uuid.UUID,
	message string,
	dateSent time.Time,
) Notification {

	return Notification{
		ID:       id,
		MemberID: memberID,
		Message:  message,
		DateSent: ToOccurredAt(dateSent),
	}
}

// OverdueFineMessage is the message recorded when an overdue fine is applied.
func OverdueFineMessage(bookTitle string, amount Rupees) string {
	return fmt.Sprintf("Your return of %q was overdue. A fine of ₹%d has been applied to your account.", bookTitle, amount)
}

// SweepFineMessage is the message recorded when the overdue sweep applies a fine.
func SweepFineMessage(amount Rupees) string {
	return fmt.Sprintf("An overdue loan was detected on your account. A fine of ₹%d has been applied.", amount)
}

// FinePaidMessage is the message recorded when a fine is paid.
func FinePaidMessage(amount Rupees) string {
	return fmt.Sprintf("Payment received. Your fine of ₹%d has been marked as paid.", amount)
}

// StatusChangedMessage is the message recorded when a membership status changes.
func StatusChangedMessage(status MembershipStatus) string {
	return fmt.Sprintf("Your membership status has changed to %s.", status)
}
