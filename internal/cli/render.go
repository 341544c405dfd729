package cli

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/mindful/internal/catalog"
	"github.com/rshade/mindful/internal/session"
	"github.com/rshade/mindful/internal/web"
)

// RenderParams holds the render command flags. Flags that were not set
// keep the configured calculator position and an empty page state.
type RenderParams struct {
	Out     string
	Queries int
	Length  string
	Item    int
	Pledges []string
	Tips    []int

	QueriesSet bool
	LengthSet  bool
	ItemSet    bool
}

// values converts the flags to the page's query-string form so they are
// validated exactly like a browser request.
func (p RenderParams) values() url.Values {
	v := url.Values{}
	if p.QueriesSet {
		v.Set(session.ParamQueries, strconv.Itoa(p.Queries))
	}
	if p.LengthSet {
		v.Set(session.ParamLength, p.Length)
	}
	if p.ItemSet {
		v.Set(session.ParamItem, strconv.Itoa(p.Item))
	}
	for _, key := range p.Pledges {
		v.Add(session.ParamPledge, key)
	}
	for _, n := range p.Tips {
		v.Add(session.ParamTip, strconv.Itoa(n))
	}
	return v
}

// NewRenderCmd creates the "render" command, which writes the page as a
// standalone HTML document.
func NewRenderCmd() *cobra.Command {
	var params RenderParams

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the page as an HTML document",
		Long: `Writes the page as a single HTML document with inline styles.

Interactive controls in the document are links back to "/", so they work
when the file is served by "mindful serve".`,
		Example: `  # Write to a file
  mindful render --out weight.html

  # Pre-set the calculator and open a card
  mindful render --queries 40 --length long --item 2 --pledge batch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.QueriesSet = cmd.Flags().Changed("queries")
			params.LengthSet = cmd.Flags().Changed("length")
			params.ItemSet = cmd.Flags().Changed("item")
			return executeRender(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Out, "out", "", "output file (default stdout)")
	cmd.Flags().IntVarP(&params.Queries, "queries", "q", 0, "AI queries per day (1-100)")
	cmd.Flags().StringVarP(&params.Length, "length", "l", "", "average response length: short, medium, long or 1-3")
	cmd.Flags().IntVar(&params.Item, "item", 0, "rank of the usage category to open")
	cmd.Flags().StringArrayVar(&params.Pledges, "pledge", nil, "pledge to check (repeatable)")
	cmd.Flags().IntSliceVar(&params.Tips, "tip", nil, "tip number to expand (repeatable)")

	return cmd
}

func executeRender(cmd *cobra.Command, params RenderParams) error {
	ctx := cmd.Context()

	defaults, err := configuredInput(configFrom(ctx))
	if err != nil {
		return err
	}

	s, err := session.FromValuesWithDefaults(params.values(), catalog.Default(), defaults)
	if err != nil {
		return fmt.Errorf("invalid page state: %w", err)
	}

	var buf bytes.Buffer
	if err = web.RenderPage(&buf, s); err != nil {
		return err
	}

	if params.Out == "" {
		_, err = buf.WriteTo(cmd.OutOrStdout())
		return err
	}

	if err = os.WriteFile(params.Out, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", params.Out, err)
	}
	logger.Info().Ctx(ctx).
		Str("operation", "render").
		Str("path", params.Out).
		Int("bytes", buf.Len()).
		Msg("page written")
	cmd.Printf("Page written to %s\n", params.Out)
	return nil
}
