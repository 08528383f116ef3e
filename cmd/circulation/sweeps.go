package main

import (
	"github.com/spf13/cobra"

	"github.com/openshelf/circulation-go/features/command/evaluatememberships"
	"github.com/openshelf/circulation-go/features/command/sweepoverduefines"
)

func newSweepFinesCmd() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "sweep-fines",
		Short: "Apply fines for currently-overdue loans",
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

			handler := sweepoverduefines.NewCommandHandler(store)

			result, err := handler.Handle(cmd.Context(), sweepoverduefines.BuildCommand(at))
			if err != nil {
				return err
			}

			cmd.Printf("overdue loans: %d, fines applied: %d, duplicates skipped: %d, members suspended: %d\n",
				result.OverdueLoans, result.FinesApplied, result.DuplicatesSkipped, result.MembersSuspended)

			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "evaluation time (RFC3339, default now)")

	return cmd
}

func newEvaluateMembersCmd() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "evaluate-members",
		Short: "Re-evaluate membership statuses",
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

			handler := evaluatememberships.NewCommandHandler(store)

			result, err := handler.Handle(cmd.Context(), evaluatememberships.BuildCommand(at))
			if err != nil {
				return err
			}

			cmd.Printf("members evaluated: %d, status changes: %d\n",
				result.MembersEvaluated, result.StatusChanges)

			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "evaluation time (RFC3339, default now)")

	return cmd
}
