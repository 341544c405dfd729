package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/mindful/internal/catalog"
	"github.com/rshade/mindful/internal/config"
	"github.com/rshade/mindful/internal/session"
)

const tabPadding = 2

// NewCatalogListCmd creates "catalog list".
func NewCatalogListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List usage categories by rank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(output, configFrom(cmd.Context()))
			if err != nil {
				return err
			}

			cats := catalog.All()
			w := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				return renderJSON(w, cats)
			case config.FormatNDJSON:
				return renderNDJSON(w, cats)
			default:
				return renderCatalogTable(w, cats)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format (table, json, ndjson)")
	return cmd
}

// NewCatalogShowCmd creates "catalog show RANK".
func NewCatalogShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show RANK",
		Short: "Show one usage category with its tips",
		Example: `  # Details for the most common use
  mindful catalog show 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(output, configFrom(cmd.Context()))
			if err != nil {
				return err
			}

			rank, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: invalid rank %q: must be a number", session.ErrInvalidParam, args[0])
			}
			cat, ok := catalog.ByRank(rank)
			if !ok {
				return fmt.Errorf("%w: no usage category with rank %d (have 1-%d)",
					session.ErrUnknownItem, rank, len(catalog.All()))
			}

			w := cmd.OutOrStdout()
			switch format {
			case config.FormatJSON:
				return renderJSON(w, cat)
			case config.FormatNDJSON:
				return renderNDJSON(w, []catalog.UsageCategory{cat})
			default:
				return renderCategoryDetails(w, cat, catalog.Default().Copy.Headings)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format (table, json, ndjson)")
	return cmd
}

func renderCatalogTable(w io.Writer, cats []catalog.UsageCategory) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "RANK\tCATEGORY\tIMPACT\tDESCRIPTION")
	for _, c := range cats {
		fmt.Fprintf(tw, "%d\t%s\t%d/100\t%s\n", c.Rank, c.Title, c.ImpactScore, c.ShortDescription)
	}
	return tw.Flush()
}

func renderCategoryDetails(w io.Writer, c catalog.UsageCategory, h catalog.Headings) error {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s\n", c.Rank, c.Title)
	b.WriteString(strings.Repeat("=", len([]rune(c.Title))+len(strconv.Itoa(c.Rank))+2))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n\n", h.DetailsInvolves, c.ShortDescription)
	fmt.Fprintf(&b, "%s %s\n", h.DetailsImpact, c.LongDescription)
	fmt.Fprintf(&b, "Impact score: %d/100\n\n", c.ImpactScore)
	b.WriteString(h.DetailsTips + "\n")
	for _, tip := range c.Tips {
		fmt.Fprintf(&b, "  • %s\n", tip)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
