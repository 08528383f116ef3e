package main

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/openshelf/circulation-go/features/command/addbook"
	"github.com/openshelf/circulation-go/features/command/registermember"
)

type seedBook struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	ISBN            string `json:"isbn"`
	YearPublished   int    `json:"year_published"`
	AvailableCopies int    `json:"available_copies"`
}

type seedMember struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type seedFile struct {
	Books   []seedBook   `json:"books"`
	Members []seedMember `json:"members"`
}

func newImportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Seed the store from a JSON file",
		Long: "Seed the store from a JSON file with \"books\" and \"members\" arrays.\n" +
			"Books and members go through the regular add/register rules, so duplicate\n" +
			"ISBNs top up copy counts and duplicate emails are rejected.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, readErr := os.ReadFile(file)
			if readErr != nil {
				return readErr
			}

			var seed seedFile
			if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &seed); err != nil {
				return err
			}

			store, cleanup, storeErr := openStore(cmd.Context())
			if storeErr != nil {
				return storeErr
			}
			defer cleanup()

			addBook := addbook.NewCommandHandler(store)
			register := registermember.NewCommandHandler(store)

			for _, book := range seed.Books {
				command := addbook.BuildCommand(
					book.Title, book.Author, book.Genre, book.ISBN, book.YearPublished, book.AvailableCopies)

				if _, err := addBook.Handle(cmd.Context(), command); err != nil {
					return err
				}
			}

			for _, member := range seed.Members {
				command := registermember.BuildCommand(member.Name, member.Email, member.Phone, member.Address)

				if _, err := register.Handle(cmd.Context(), command); err != nil {
					return err
				}
			}

			cmd.Printf("imported %d book(s) and %d member(s)\n", len(seed.Books), len(seed.Members))

			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "seed file path")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
