package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vjsx/internal/errors"
)

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe error codes",
		Long: `Explain prints the message and detail registered for an error code.
Without an argument it lists every code.

Examples:
  vjsx explain
  vjsx explain E102`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return listCodes(out)
			}
			return explainCode(out, strings.ToUpper(args[0]))
		},
	}
}

func listCodes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, code := range errors.GetAllCodes() {
		tmpl, _ := errors.GetTemplate(code)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", code, tmpl.Category, tmpl.Message)
	}
	if err := tw.Flush(); err != nil {
		return errors.FromError(err, "E141")
	}
	return nil
}

func explainCode(w io.Writer, code string) error {
	tmpl, ok := errors.GetTemplate(code)
	if !ok {
		return errors.New("E142").
			WithDetail("Unknown error code " + code).
			WithSuggestion("Run vjsx explain to list the known codes")
	}
	if _, err := fmt.Fprintf(w, "%s [%s] %s\n\n%s\n", code, tmpl.Category, tmpl.Message, tmpl.Detail); err != nil {
		return errors.FromError(err, "E141")
	}
	return nil
}
