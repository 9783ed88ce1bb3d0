package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"isbnapi/internal/isbn"
)

// ExitError carries a non-zero exit status out of a RunE handler without
// calling os.Exit there.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func newRootCommand(scheme isbn.Scheme) *cobra.Command {
	root := &cobra.Command{
		Use:   "isbncheck",
		Short: "Issue and verify remainder-checked ISBN-13 codes",
		Long: `isbncheck issues and verifies 13-digit codes whose value modulo 3, 5, 7,
11 and 13 matches the publisher code.

The scheme widths come from the same SCHEME_* environment variables the API
server reads.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newCheckCommand(scheme),
		newGenerateCommand(scheme),
		newValidateCommand(scheme),
	)
	return root
}
