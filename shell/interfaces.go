package shell

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
)

// BookStore is the port for catalog records and copy counts.
// AdjustAvailableCopies must reject any delta that would make the available
// copy count negative.
type BookStore interface {
	InsertBook(ctx context.Context, book core.Book) error
	GetBookByID(ctx context.Context, id uuid.UUID) (core.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (core.Book, error)
	ListBooks(ctx context.Context) ([]core.Book, error)
	UpdateBook(ctx context.Context, book core.Book) error
	AdjustAvailableCopies(ctx context.Context, id uuid.UUID, delta int) error
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

// MemberStore is the port for member accounts and membership status.
type MemberStore interface {
	InsertMember(ctx context.Context, member core.Member) error
	GetMemberByID(ctx context.Context, id uuid.UUID) (core.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (core.Member, error)
	ListMembers(ctx context.Context) ([]core.Member, error)
	UpdateMember(ctx context.Context, member core.Member) error
	UpdateMemberStatus(ctx context.Context, id uuid.UUID, status core.MembershipStatus) error
	DeleteMember(ctx context.Context, id uuid.UUID) error
}

// TransactionStore is the port for borrowing transactions.
// List methods return transactions ordered by borrow date, oldest first.
type TransactionStore interface {
	InsertTransaction(ctx context.Context, transaction core.BorrowingTransaction) error
	GetTransactionByID(ctx context.Context, id uuid.UUID) (core.BorrowingTransaction, error)
	ListTransactions(ctx context.Context) ([]core.BorrowingTransaction, error)
	ListTransactionsByMember(ctx context.Context, memberID uuid.UUID) ([]core.BorrowingTransaction, error)
	ListTransactionsByMemberName(ctx context.Context, name string) ([]core.BorrowingTransaction, error)
	ListOutstandingTransactions(ctx context.Context) ([]core.BorrowingTransaction, error)
	ListOutstandingTransactionsByMember(ctx context.Context, memberID uuid.UUID) ([]core.BorrowingTransaction, error)
	ListOutstandingTransactionsByBook(ctx context.Context, bookID uuid.UUID) ([]core.BorrowingTransaction, error)
	ListOverdueTransactions(ctx context.Context, asOf time.Time) ([]core.BorrowingTransaction, error)
	MarkTransactionReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// FineStore is the port for fines.
// ListFinesByMember returns fines in creation order; AddFineForMember
// semantics depend on that ordering.
type FineStore interface {
	InsertFine(ctx context.Context, fine core.Fine) error
	GetFineByID(ctx context.Context, id uuid.UUID) (core.Fine, error)
	ListFines(ctx context.Context) ([]core.Fine, error)
	ListFinesByMember(ctx context.Context, memberID uuid.UUID) ([]core.Fine, error)
	UpdateFine(ctx context.Context, fine core.Fine) error
	DeleteFine(ctx context.Context, id uuid.UUID) error
}

// NotificationStore is the port for the in-app message log.
type NotificationStore interface {
	InsertNotification(ctx context.Context, notification core.Notification) error
	ListNotifications(ctx context.Context) ([]core.Notification, error)
	ListNotificationsByMember(ctx context.Context, memberID uuid.UUID) ([]core.Notification, error)
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}

// Store is the full port implemented by the storage engines.
// Feature handlers declare the narrow subset they actually need.
type Store interface {
	BookStore
	MemberStore
	TransactionStore
	FineStore
	NotificationStore
}
