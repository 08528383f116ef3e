// Package memoryengine implements the circulation store ports on plain maps.
//
// It exists for tests and for tooling that needs a store without a database.
// A single mutex serializes every operation, which also gives this engine the
// strongest form of the check-then-act guards the postgres schema provides.
package memoryengine

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/shell"
)

var _ shell.Store = (*Store)(nil)

// Store is the in-memory implementation of the circulation store ports.
type Store struct {
	mu sync.Mutex

	books         map[uuid.UUID]core.Book
	members       map[uuid.UUID]core.Member
	transactions  map[uuid.UUID]core.BorrowingTransaction
	fines         map[uuid.UUID]core.Fine
	notifications map[uuid.UUID]core.Notification

	// insertion order per table, so list results are deterministic
	bookOrder         []uuid.UUID
	memberOrder       []uuid.UUID
	transactionOrder  []uuid.UUID
	fineOrder         []uuid.UUID
	notificationOrder []uuid.UUID
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		books:         make(map[uuid.UUID]core.Book),
		members:       make(map[uuid.UUID]core.Member),
		transactions:  make(map[uuid.UUID]core.BorrowingTransaction),
		fines:         make(map[uuid.UUID]core.Fine),
		notifications: make(map[uuid.UUID]core.Notification),
	}
}

// ---- books ----

// InsertBook inserts a new catalog record, rejecting duplicate ISBNs.
func (s *Store) InsertBook(_ context.Context, book core.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.books {
		if existing.ISBN == book.ISBN {
			return core.ErrDuplicateISBN
		}
	}

	s.books[book.ID] = book
	s.bookOrder = append(s.bookOrder, book.ID)

	return nil
}

// GetBookByID fetches one catalog record by id.
func (s *Store) GetBookByID(_ context.Context, id uuid.UUID) (core.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return core.Book{}, core.ErrBookNotFound
	}

	return book, nil
}

// GetBookByISBN fetches one catalog record by ISBN.
func (s *Store) GetBookByISBN(_ context.Context, isbn string) (core.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.bookOrder {
		if book, ok := s.books[id]; ok && book.ISBN == isbn {
			return book, nil
		}
	}

	return core.Book{}, core.ErrBookNotFound
}

// ListBooks returns all catalog records in insertion order.
func (s *Store) ListBooks(_ context.Context) ([]core.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]core.Book, 0, len(s.books))
	for _, id := range s.bookOrder {
		if book, ok := s.books[id]; ok {
			books = append(books, book)
		}
	}

	return books, nil
}

// UpdateBook overwrites a catalog record's attributes.
func (s *Store) UpdateBook(_ context.Context, book core.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[book.ID]; !ok {
		return core.ErrBookNotFound
	}

	for _, existing := range s.books {
		if existing.ID != book.ID && existing.ISBN == book.ISBN {
			return core.ErrDuplicateISBN
		}
	}

	s.books[book.ID] = book

	return nil
}

// AdjustAvailableCopies changes a book's available copy count by delta,
// refusing any adjustment that would make the count negative.
func (s *Store) AdjustAvailableCopies(_ context.Context, id uuid.UUID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return core.ErrBookNotFound
	}

	if book.AvailableCopies+delta < 0 {
		return core.ErrBookUnavailable
	}

	book.AvailableCopies += delta
	s.books[id] = book

	return nil
}

// DeleteBook removes a catalog record.
func (s *Store) DeleteBook(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return core.ErrBookNotFound
	}

	delete(s.books, id)

	return nil
}

// ---- members ----

// InsertMember inserts a new member account, rejecting duplicate emails.
func (s *Store) InsertMember(_ context.Context, member core.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.members {
		if strings.EqualFold(existing.Email, member.Email) {
			return core.ErrDuplicateEmail
		}
	}

	s.members[member.ID] = member
	s.memberOrder = append(s.memberOrder, member.ID)

	return nil
}

// GetMemberByID fetches one member account by id.
func (s *Store) GetMemberByID(_ context.Context, id uuid.UUID) (core.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members[id]
	if !ok {
		return core.Member{}, core.ErrMemberNotFound
	}

	return member, nil
}

// GetMemberByEmail fetches one member account by email.
func (s *Store) GetMemberByEmail(_ context.Context, email string) (core.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.memberOrder {
		if member, ok := s.members[id]; ok && strings.EqualFold(member.Email, email) {
			return member, nil
		}
	}

	return core.Member{}, core.ErrMemberNotFound
}

// ListMembers returns all member accounts in insertion order.
func (s *Store) ListMembers(_ context.Context) ([]core.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := make([]core.Member, 0, len(s.members))
	for _, id := range s.memberOrder {
		if member, ok := s.members[id]; ok {
			members = append(members, member)
		}
	}

	return members, nil
}

// UpdateMember overwrites a member's profile attributes and status.
func (s *Store) UpdateMember(_ context.Context, member core.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[member.ID]; !ok {
		return core.ErrMemberNotFound
	}

	for _, existing := range s.members {
		if existing.ID != member.ID && strings.EqualFold(existing.Email, member.Email) {
			return core.ErrDuplicateEmail
		}
	}

	s.members[member.ID] = member

	return nil
}

// UpdateMemberStatus persists a membership status transition.
func (s *Store) UpdateMemberStatus(_ context.Context, id uuid.UUID, status core.MembershipStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members[id]
	if !ok {
		return core.ErrMemberNotFound
	}

	member.Status = status
	s.members[id] = member

	return nil
}

// DeleteMember removes a member account.
func (s *Store) DeleteMember(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[id]; !ok {
		return core.ErrMemberNotFound
	}

	delete(s.members, id)

	return nil
}

// ---- transactions ----

// InsertTransaction inserts a new borrowing transaction, enforcing at most
// one outstanding loan per (member, book) pair.
func (s *Store) InsertTransaction(_ context.Context, transaction core.BorrowingTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if transaction.IsOutstanding() {
		for _, existing := range s.transactions {
			if existing.IsOutstanding() &&
				existing.MemberID == transaction.MemberID &&
				existing.BookID == transaction.BookID {
				return core.ErrBookAlreadyBorrowed
			}
		}
	}

	s.transactions[transaction.ID] = transaction
	s.transactionOrder = append(s.transactionOrder, transaction.ID)

	return nil
}

// GetTransactionByID fetches one transaction by id.
func (s *Store) GetTransactionByID(_ context.Context, id uuid.UUID) (core.BorrowingTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transaction, ok := s.transactions[id]
	if !ok {
		return core.BorrowingTransaction{}, core.ErrTransactionNotFoundOrReturned
	}

	return transaction, nil
}

// ListTransactions returns all transactions in insertion order.
func (s *Store) ListTransactions(ctx context.Context) ([]core.BorrowingTransaction, error) {
	return s.listTransactions(func(core.BorrowingTransaction) bool { return true }), nil
}

// ListTransactionsByMember returns all transactions of one member.
func (s *Store) ListTransactionsByMember(_ context.Context, memberID uuid.UUID) ([]core.BorrowingTransaction, error) {
	return s.listTransactions(func(t core.BorrowingTransaction) bool {
		return t.MemberID == memberID
	}), nil
}

// ListTransactionsByMemberName returns all transactions of members with the given name.
func (s *Store) ListTransactionsByMemberName(_ context.Context, name string) ([]core.BorrowingTransaction, error) {
	s.mu.Lock()
	matching := make(map[uuid.UUID]bool)
	for _, member := range s.members {
		if member.Name == name {
			matching[member.ID] = true
		}
	}
	s.mu.Unlock()

	return s.listTransactions(func(t core.BorrowingTransaction) bool {
		return matching[t.MemberID]
	}), nil
}

// ListOutstandingTransactions returns every open loan.
func (s *Store) ListOutstandingTransactions(_ context.Context) ([]core.BorrowingTransaction, error) {
	return s.listTransactions(func(t core.BorrowingTransaction) bool {
		return t.IsOutstanding()
	}), nil
}

// ListOutstandingTransactionsByMember returns a member's open loans.
func (s *Store) ListOutstandingTransactionsByMember(_ context.Context, memberID uuid.UUID) ([]core.BorrowingTransaction, error) {
	return s.listTransactions(func(t core.BorrowingTransaction) bool {
		return t.IsOutstanding() && t.MemberID == memberID
	}), nil
}

// ListOutstandingTransactionsByBook returns a book's open loans.
func (s *Store) ListOutstandingTransactionsByBook(_ context.Context, bookID uuid.UUID) ([]core.BorrowingTransaction, error) {
	return s.listTransactions(func(t core.BorrowingTransaction) bool {
		return t.IsOutstanding() && t.BookID == bookID
	}), nil
}

// ListOverdueTransactions returns every open loan past its due date at asOf.
func (s *Store) ListOverdueTransactions(_ context.Context, asOf time.Time) ([]core.BorrowingTransaction, error) {
	return s.listTransactions(func(t core.BorrowingTransaction) bool {
		return t.IsOverdueAt(asOf)
	}), nil
}

func (s *Store) listTransactions(keep func(core.BorrowingTransaction) bool) []core.BorrowingTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]core.BorrowingTransaction, 0)
	for _, id := range s.transactionOrder {
		if transaction, ok := s.transactions[id]; ok && keep(transaction) {
			transactions = append(transactions, transaction)
		}
	}

	return transactions
}

// MarkTransactionReturned closes an outstanding transaction.
func (s *Store) MarkTransactionReturned(_ context.Context, id uuid.UUID, returnedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	transaction, ok := s.transactions[id]
	if !ok || !transaction.IsOutstanding() {
		return core.ErrTransactionNotFoundOrReturned
	}

	transaction.Status = core.TransactionReturned
	transaction.ReturnDate = core.ToOccurredAt(returnedAt)
	s.transactions[id] = transaction

	return nil
}

// DeleteTransaction removes a transaction.
func (s *Store) DeleteTransaction(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[id]; !ok {
		return core.ErrTransactionNotFoundOrReturned
	}

	delete(s.transactions, id)

	return nil
}

// ---- fines ----

// InsertFine inserts a new fine.
func (s *Store) InsertFine(_ context.Context, fine core.Fine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fines[fine.ID] = fine
	s.fineOrder = append(s.fineOrder, fine.ID)

	return nil
}

// GetFineByID fetches one fine by id.
func (s *Store) GetFineByID(_ context.Context, id uuid.UUID) (core.Fine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fine, ok := s.fines[id]
	if !ok {
		return core.Fine{}, core.ErrFineNotFound
	}

	return fine, nil
}

// ListFines returns all fines in creation order.
func (s *Store) ListFines(_ context.Context) ([]core.Fine, error) {
	return s.listFines(func(core.Fine) bool { return true }), nil
}

// ListFinesByMember returns a member's fines in creation order.
func (s *Store) ListFinesByMember(_ context.Context, memberID uuid.UUID) ([]core.Fine, error) {
	return s.listFines(func(f core.Fine) bool {
		return f.MemberID == memberID
	}), nil
}

func (s *Store) listFines(keep func(core.Fine) bool) []core.Fine {
	s.mu.Lock()
	defer s.mu.Unlock()

	fines := make([]core.Fine, 0)
	for _, id := range s.fineOrder {
		if fine, ok := s.fines[id]; ok && keep(fine) {
			fines = append(fines, fine)
		}
	}

	return fines
}

// UpdateFine overwrites a fine's amount, status and date.
func (s *Store) UpdateFine(_ context.Context, fine core.Fine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.fines[fine.ID]
	if !ok {
		return core.ErrFineNotFound
	}

	existing.Amount = fine.Amount
	existing.Status = fine.Status
	existing.TransactionDate = fine.TransactionDate
	s.fines[fine.ID] = existing

	return nil
}

// DeleteFine removes a fine.
func (s *Store) DeleteFine(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.fines[id]; !ok {
		return core.ErrFineNotFound
	}

	delete(s.fines, id)

	return nil
}

// ---- notifications ----

// InsertNotification records a new in-app message.
func (s *Store) InsertNotification(_ context.Context, notification core.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications[notification.ID] = notification
	s.notificationOrder = append(s.notificationOrder, notification.ID)

	return nil
}

// ListNotifications returns all recorded messages in insertion order.
func (s *Store) ListNotifications(_ context.Context) ([]core.Notification, error) {
	return s.listNotifications(func(core.Notification) bool { return true }), nil
}

// ListNotificationsByMember returns one member's messages in insertion order.
func (s *Store) ListNotificationsByMember(_ context.Context, memberID uuid.UUID) ([]core.Notification, error) {
	return s.listNotifications(func(n core.Notification) bool {
		return n.MemberID == memberID
	}), nil
}

func (s *Store) listNotifications(keep func(core.Notification) bool) []core.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := make([]core.Notification, 0)
	for _, id := range s.notificationOrder {
		if notification, ok := s.notifications[id]; ok && keep(notification) {
			notifications = append(notifications, notification)
		}
	}

	return notifications
}

// DeleteNotification removes a recorded message.
func (s *Store) DeleteNotification(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notifications[id]; !ok {
		return core.ErrNotificationNotFound
	}

	delete(s.notifications, id)

	return nil
}
