package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"isbnapi/internal/isbn"
	"isbnapi/internal/issuance"
	"isbnapi/internal/listing"
)

func newGenerateCommand(scheme isbn.Scheme) *cobra.Command {
	var (
		country   string
		publisher string
		count     int
		multiples bool
		offset    int64
		output    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a batch of codes as a listing file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if offset < 0 {
				return fmt.Errorf("--offset must not be negative, got %d", offset)
			}
			c, err := scheme.NormalizeCountry(country)
			if err != nil {
				return err
			}
			p, err := scheme.NormalizePublisher(publisher)
			if err != nil {
				return err
			}

			res, err := scheme.Batch(isbn.Request{Country: c, Publisher: p, UseMultiples: multiples}, count, isbn.Cursor(offset))
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := listing.Write(w, scheme, res.Codes); err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d codes to %s (next offset %d)\n", res.Count(), output, res.Next)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", issuance.DefaultCountryCode, "country code")
	cmd.Flags().StringVar(&publisher, "publisher", issuance.DefaultPublisherCode, "publisher code")
	cmd.Flags().IntVarP(&count, "count", "n", issuance.DefaultCount, fmt.Sprintf("number of codes (1-%d)", isbn.MaxBatch))
	cmd.Flags().BoolVar(&multiples, "multiples", true, "advance by the multiple stride instead of one slot")
	cmd.Flags().Int64Var(&offset, "offset", 0, "cursor to start from (next offset of a previous run)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the listing to this file instead of stdout")
	return cmd
}
