package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"isbnapi/internal/isbn"
	"isbnapi/internal/issuance"
)

func newValidateCommand(scheme isbn.Scheme) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <isbn>",
		Short: "Validate one code and show its remainders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := issuance.NewService(scheme).Validate(cmd.Context(), issuance.ValidateRequest{ISBN: args[0]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			d, _ := isbn.Parse(res.ISBN)
			country, group, publisher, book := scheme.Split(d)
			fmt.Fprintf(out, "ISBN:      %s\n", res.ISBN)
			fmt.Fprintf(out, "Format:    %s-%s-%s-%s\n", country, group, publisher, book)
			fmt.Fprintf(out, "Moduli:    %v\n", isbn.Moduli)
			fmt.Fprintf(out, "Expected:  %v\n", res.ExpectedRemainders)
			fmt.Fprintf(out, "Actual:    %v\n", res.ActualRemainders)
			if res.Valid {
				fmt.Fprintln(out, "Result:    valid")
				return nil
			}
			fmt.Fprintf(out, "Result:    invalid (mismatch mod %v)\n", res.MismatchedModuli)
			if res.CorrectedISBN != "" {
				fmt.Fprintf(out, "Corrected: %s\n", res.CorrectedISBN)
			}
			return &ExitError{Code: 1}
		},
	}
}
