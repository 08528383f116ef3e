package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/openshelf/circulation-go/features/query/approachingfines"
	"github.com/openshelf/circulation-go/features/query/overduetransactions"
)

func newListOverdueCmd() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "list-overdue",
		Short: "List overdue loans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, parseErr := parseAsOf(asOf)
			if parseErr != nil {
				return parseErr
			}

			store, cleanup, storeErr := openStore(cmd.Context())
			if storeErr != nil {
				return storeErr
			}
			defer cleanup()

			handler := overduetransactions.NewQueryHandler(store)

			result, err := handler.Handle(cmd.Context(), overduetransactions.BuildQuery(at))
			if err != nil {
				return err
			}

			for _, loan := range result.Loans {
				cmd.Printf("%s  member=%s  book=%s  due=%s  overdue=%dd\n",
					loan.TransactionID, loan.MemberID, loan.BookID,
					loan.DueDate.Format(time.DateOnly), loan.OverdueDays)
			}
			cmd.Printf("%d overdue loan(s)\n", result.Count)

			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "evaluation time (RFC3339, default now)")

	return cmd
}

func newApproachingFinesCmd() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "approaching-fines",
		Short: "Preview due dates and fine estimates for open loans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, parseErr := parseAsOf(asOf)
			if parseErr != nil {
				return parseErr
			}

			store, cleanup, storeErr := openStore(cmd.Context())
			if storeErr != nil {
				return storeErr
			}
			defer cleanup()

			handler := approachingfines.NewQueryHandler(store)

			result, err := handler.Handle(cmd.Context(), approachingfines.BuildQuery(at))
			if err != nil {
				return err
			}

			for _, loan := range result.Loans {
				if loan.EstimatedFine > 0 {
					cmd.Printf("%s  member=%s  due=%s  past due, estimated fine %d\n",
						loan.TransactionID, loan.MemberID, loan.DueDate.Format(time.DateOnly), loan.EstimatedFine)
					continue
				}

				cmd.Printf("%s  member=%s  due=%s  %d day(s) remaining\n",
					loan.TransactionID, loan.MemberID, loan.DueDate.Format(time.DateOnly), loan.DaysRemaining)
			}
			cmd.Printf("%d open loan(s)\n", result.Count)

			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "evaluation time (RFC3339, default now)")

	return cmd
}
