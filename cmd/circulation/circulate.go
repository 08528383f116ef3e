package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/openshelf/circulation-go/core"
	"github.com/openshelf/circulation-go/features/command/borrowbook"
	"github.com/openshelf/circulation-go/features/command/payfine"
	"github.com/openshelf/circulation-go/features/command/returnbook"
)

func newBorrowCmd() *cobra.Command {
	var bookID, memberID string

	cmd := &cobra.Command{
		Use:   "borrow",
		Short: "Borrow a book for a member",
		RunE: func(cmd *cobra.Command, _ []string) error {
			book, bookErr := uuid.Parse(bookID)
			if bookErr != nil {
				return bookErr
			}

			member, memberErr := uuid.Parse(memberID)
			if memberErr != nil {
				return memberErr
			}

			store, cleanup, storeErr := openStore(cmd.Context())
			if storeErr != nil {
				return storeErr
			}
			defer cleanup()

			handler := borrowbook.NewCommandHandler(store)

			transaction, err := handler.Handle(cmd.Context(), borrowbook.BuildCommand(book, member, time.Now()))
			if err != nil {
				return err
			}

			cmd.Printf("borrowed: transaction %s, due %s\n",
				transaction.ID, transaction.DueDate().Format(time.RFC3339))

			return nil
		},
	}

	cmd.Flags().StringVar(&bookID, "book", "", "book id")
	cmd.Flags().StringVar(&memberID, "member", "", "member id")
	_ = cmd.MarkFlagRequired("book")
	_ = cmd.MarkFlagRequired("member")

	return cmd
}

func newReturnCmd() *cobra.Command {
	var transactionID string

	cmd := &cobra.Command{
		Use:   "return",
		Short: "Return an outstanding loan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			transaction, parseErr := uuid.Parse(transactionID)
			if parseErr != nil {
				return parseErr
			}

			store, cleanup, storeErr := openStore(cmd.Context())
			if storeErr != nil {
				return storeErr
			}
			defer cleanup()

			handler := returnbook.NewCommandHandler(store)

			decision, err := handler.Handle(cmd.Context(), returnbook.BuildCommand(transaction, time.Now()))
			if err != nil {
				return err
			}

			switch {
			case decision.HasFineToRecord():
				cmd.Printf("returned %d days overdue, fine of %d applied\n", decision.OverdueDays, decision.FineAmount)
			case decision.OverdueDays > 0:
				cmd.Printf("returned %d days overdue, identical fine already on record\n", decision.OverdueDays)
			default:
				cmd.Println("returned on time")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&transactionID, "transaction", "", "transaction id")
	_ = cmd.MarkFlagRequired("transaction")

	return cmd
}

func newPayFineCmd() *cobra.Command {
	var fineID string
	var amount int64

	cmd := &cobra.Command{
		Use:   "pay-fine",
		Short: "Pay a fine in full",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fine, parseErr := uuid.Parse(fineID)
			if parseErr != nil {
				return parseErr
			}

			store, cleanup, storeErr := openStore(cmd.Context())
			if storeErr != nil {
				return storeErr
			}
			defer cleanup()

			handler := payfine.NewCommandHandler(store)

			paid, err := handler.Handle(cmd.Context(), payfine.BuildCommand(fine, core.Rupees(amount), time.Now()))
			if err != nil {
				return err
			}

			cmd.Printf("fine %s paid: %d\n", paid.ID, paid.Amount)

			return nil
		},
	}

	cmd.Flags().StringVar(&fineID, "fine", "", "fine id")
	cmd.Flags().Int64Var(&amount, "amount", 0, "payment amount")
	_ = cmd.MarkFlagRequired("fine")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
