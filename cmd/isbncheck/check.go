package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"isbnapi/internal/isbn"
	"isbnapi/internal/listing"
)

func newCheckCommand(scheme isbn.Scheme) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Verify every code in a listing file",
		Long: `Verify every code in a listing file written by "isbncheck generate" or the
web download. Exits with status 1 when any code fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			entries, err := listing.Scan(f)
			if err != nil {
				return err
			}
			return runCheck(cmd, scheme, args[0], entries)
		},
	}
}

func runCheck(cmd *cobra.Command, scheme isbn.Scheme, name string, entries []listing.Entry) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checking %d codes in %s\n", len(entries), name)

	invalid := 0
	for _, e := range entries {
		res, err := scheme.ValidateCode(e.ISBN)
		if err != nil {
			return fmt.Errorf("line %d: %w", e.Line, err)
		}
		if res.Valid {
			continue
		}
		invalid++
		fmt.Fprintf(out, "#%d INVALID: %s (line %d)\n", e.Index, e.ISBN, e.Line)
		fmt.Fprintf(out, "  expected remainders: %v\n", res.Expected)
		fmt.Fprintf(out, "  actual remainders:   %v\n", res.Actual)
	}

	if invalid > 0 {
		fmt.Fprintf(out, "%d of %d codes are invalid\n", invalid, len(entries))
		return &ExitError{Code: 1}
	}
	fmt.Fprintf(out, "All %d codes are valid\n", len(entries))
	return nil
}
