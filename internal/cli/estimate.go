package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/mindful/internal/config"
	"github.com/rshade/mindful/internal/greenops"
)

// EstimateParams holds the estimate command flags.
type EstimateParams struct {
	Queries int
	Length  string
	Output  string
}

// NewEstimateCmd creates the "estimate" command.
//
// Flags:
//   - --queries: AI queries per day (1-100; default from configuration)
//   - --length: short, medium, long or 1-3 (default from configuration)
//   - --output: table, json or ndjson
func NewEstimateCmd() *cobra.Command {
	var params EstimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the daily CO₂ of your AI use",
		Example: `  # Default position: 10 medium answers a day
  mindful estimate

  # Heavy use with long answers, as JSON
  mindful estimate --queries 100 --length long --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, params)
		},
	}

	cmd.Flags().IntVarP(&params.Queries, "queries", "q", 0, "AI queries per day (1-100)")
	cmd.Flags().StringVarP(&params.Length, "length", "l", "", "average response length: short, medium, long or 1-3")
	cmd.Flags().StringVarP(&params.Output, "output", "o", "", "output format (table, json, ndjson)")

	return cmd
}

func executeEstimate(cmd *cobra.Command, params EstimateParams) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)

	format, err := outputFormat(params.Output, cfg)
	if err != nil {
		return err
	}

	in, err := cfg.CalculatorInput()
	if err != nil {
		return fmt.Errorf("invalid calculator defaults in %s: %w", cfg.ConfigPath(), err)
	}
	if cmd.Flags().Changed("queries") {
		in.QueryCount = params.Queries
	}
	if cmd.Flags().Changed("length") {
		if in.LengthTier, err = greenops.ParseLengthTier(params.Length); err != nil {
			return err
		}
	}

	est, err := greenops.Estimate(in)
	if err != nil {
		return fmt.Errorf("estimating: %w", err)
	}

	logger.Debug().Ctx(ctx).
		Str("operation", "estimate").
		Int("queries", in.QueryCount).
		Str("length", in.LengthTier.String()).
		Int("co2_grams", est.CO2Grams).
		Msg("estimate computed")

	w := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return renderJSON(w, est)
	case config.FormatNDJSON:
		return renderNDJSON(w, []greenops.DerivedEstimate{est})
	default:
		return renderEstimateTable(w, est)
	}
}

func renderEstimateTable(w io.Writer, est greenops.DerivedEstimate) error {
	in := est.Input
	_, err := fmt.Fprintf(w, `AI Carbon Estimate
==================

Queries per day:  %d
Response length:  %s (×%s)

CO₂ per day:      %s %s
Driving:          %s miles
Phone charges:    %s

%s
`,
		in.QueryCount,
		in.LengthTier, greenops.FormatFloat(in.LengthTier.Multiplier(), 1),
		greenops.FormatGrams(est.CO2Grams), est.CompactText,
		est.Results[0].FormattedValue,
		est.Results[1].FormattedValue,
		est.DisplayText,
	)
	return err
}
