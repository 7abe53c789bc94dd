package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vjsx"
	"github.com/vango-dev/vjsx/internal/errors"
	"github.com/vango-dev/vjsx/pkg/middleware"
	"github.com/vango-dev/vjsx/pkg/vdom"
)

func inspectCmd(c *cli) *cobra.Command {
	var (
		indent  int
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Build an element descriptor and print the node",
		Long: `Build the element described in a YAML or JSON file and print the
resulting render node as JSON.

Descriptor fields:
  tag       element name, component:NAME, func:NAME or empty for a fragment
  attrs     attribute mapping, in order
  children  a scalar, an element, or a list of them

Strings of the form handler:NAME become stub handlers and values tagged
!ref become model-binding refs.

Examples:
  vjsx inspect form.yaml
  vjsx inspect --indent=0 form.json
  vjsx inspect --metrics form.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("E140").
					WithDetail("inspect needs a descriptor file").
					WithSuggestion("vjsx inspect form.yaml")
			}
			if cmd.Flags().Changed("indent") {
				c.cfg.Output.Indent = indent
			}
			if cmd.Flags().Changed("metrics") {
				c.cfg.Metrics.Enabled = metrics
			}
			return c.runInspect(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}

	cmd.Flags().IntVar(&indent, "indent", 2, "JSON indentation (0 for compact output)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print classification metrics to stderr")

	return cmd
}

func (c *cli) runInspect(ctx context.Context, out, errOut io.Writer, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	desc, err := readDescriptor(path, c.logger)
	if err != nil {
		return err
	}

	opts := c.cfg.BuilderOptions()
	var (
		reg *prometheus.Registry
		m   *middleware.Metrics
	)
	if c.cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		m = middleware.NewMetrics(
			middleware.WithRegistry(reg),
			middleware.WithNamespace(c.cfg.Metrics.Namespace),
		)
		opts = append(opts, vdom.WithObserver(m))
	}

	var builder vdom.NodeBuilder = vjsx.NewWithLogger(c.logger, opts...)
	if m != nil {
		builder = m.Wrap(builder)
	}
	traced := middleware.Tracing(builder, middleware.WithTracerName("vjsx-cli"))

	node := desc.build(contextBuilder{ctx: ctx, next: traced})
	if err := writeNode(out, node, c.cfg.Output.Indent); err != nil {
		return errors.FromError(err, "E141")
	}

	if reg != nil {
		return printMetrics(errOut, reg)
	}
	return nil
}

// contextBuilder adapts a TracedBuilder to vdom.NodeBuilder while keeping
// the command context as the span parent.
type contextBuilder struct {
	ctx  context.Context
	next *middleware.TracedBuilder
}

func (b contextBuilder) Build(tag any, cfg *vdom.Config) *vdom.RenderNode {
	return b.next.BuildContext(b.ctx, tag, cfg)
}

// printMetrics writes every non-zero series in reg, one per line.
func printMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return errors.FromError(err, "E141")
	}
	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			value, ok := sampleValue(metric)
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s%s %g", mf.GetName(), labelString(metric.GetLabel()), value))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return nil
}

func sampleValue(m *dto.Metric) (float64, bool) {
	switch {
	case m.GetCounter() != nil:
		v := m.GetCounter().GetValue()
		return v, v != 0
	case m.GetHistogram() != nil:
		n := m.GetHistogram().GetSampleCount()
		return float64(n), n != 0
	default:
		return 0, false
	}
}

func labelString(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
