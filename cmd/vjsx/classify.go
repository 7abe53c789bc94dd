package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vjsx"
	"github.com/vango-dev/vjsx/internal/errors"
	"github.com/vango-dev/vjsx/pkg/vdom"
)

func classifyCmd(c *cli) *cobra.Command {
	var (
		component bool
		rules     bool
	)

	cmd := &cobra.Command{
		Use:   "classify [--component] KEY...",
		Short: "Show which bucket attribute keys are routed to",
		Long: `Print the node-data destination of each attribute key.

Keys are classified for an HTML element unless --component is given.
Only nativeOn keys depend on the element kind: on an HTML element they
fall through to attrs.

Examples:
  vjsx classify onClick nativeOnClick vModel_trim
  vjsx classify --component nativeOnClick
  vjsx classify --rules`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if rules {
				return writeRules(out)
			}
			if len(args) == 0 {
				return errors.New("E140").
					WithDetail("classify needs at least one attribute key").
					WithSuggestion("vjsx classify onClick class vModel")
			}
			b := vjsx.NewWithLogger(c.logger, c.cfg.BuilderOptions()...)
			return writeClassification(out, b, args, !component)
		},
	}

	cmd.Flags().BoolVar(&component, "component", false, "Classify for a component instead of an HTML element")
	cmd.Flags().BoolVar(&rules, "rules", false, "List the rules in match order")

	return cmd
}

func writeClassification(w io.Writer, b *vdom.Builder, keys []string, htmlLike bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", key, b.Classify(key, htmlLike))
	}
	if err := tw.Flush(); err != nil {
		return errors.FromError(err, "E141")
	}
	return nil
}

func writeRules(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, dest := range vdom.Rules() {
		fmt.Fprintf(tw, "%d\t%s\n", i+1, dest)
	}
	if err := tw.Flush(); err != nil {
		return errors.FromError(err, "E141")
	}
	return nil
}
