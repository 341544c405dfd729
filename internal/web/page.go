package web

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"time"

	"github.com/rshade/mindful/internal/catalog"
	"github.com/rshade/mindful/internal/greenops"
	"github.com/rshade/mindful/internal/session"
)

// Section anchors used by interaction links so the browser returns to the
// section the reader acted on.
const (
	anchorCalculator = "calculator"
	anchorUsage      = "usage"
	anchorTips       = "tips"
	anchorPledge     = "pledge"
)

type comparisonView struct {
	catalog.Comparison
	DelayMs int64
}

type energyBarView struct {
	catalog.EnergyBar
	HeightPct int
	DelayMs   int64
}

type cardView struct {
	catalog.UsageCategory
	Href    template.URL
	DelayMs int64
}

type detailsView struct {
	catalog.UsageCategory
	CloseHref template.URL
}

type tipView struct {
	catalog.Tip
	Expanded bool
	Href     template.URL
}

type pledgeView struct {
	catalog.PledgeOption
	Checked bool
	Href    template.URL
}

type hiddenField struct {
	Name  string
	Value string
}

type calculatorView struct {
	Queries    int
	MinQueries int
	MaxQueries int
	Length     int
	LengthName string
	MinLength  int
	MaxLength  int
	CO2        string
	Text       string
	Hidden     []hiddenField
}

// pageData is the template's view of one session.
type pageData struct {
	Copy         catalog.Copy
	WasteBody    template.HTML
	WasteCallout template.HTML
	ClosingBody  template.HTML

	Comparisons []comparisonView
	EnergyBars  []energyBarView
	Calculator  calculatorView
	Cards       []cardView
	Details     *detailsView
	Tips        []tipView
	Resources   []catalog.Resource
	Pledges     []pledgeView
	PledgeCount int
}

// RenderPage writes the complete HTML page for s.
func RenderPage(w io.Writer, s *session.Session) error {
	data, err := newPageData(s)
	if err != nil {
		return err
	}
	if err = pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

func newPageData(s *session.Session) (*pageData, error) {
	content := s.Content()
	data := &pageData{
		Copy:      content.Copy,
		Resources: content.Resources,
	}

	var err error
	if data.WasteBody, err = renderMarkdown(content.Copy.WasteBody); err != nil {
		return nil, err
	}
	if data.WasteCallout, err = renderMarkdown(content.Copy.WasteCallout); err != nil {
		return nil, err
	}
	if data.ClosingBody, err = renderMarkdown(content.Copy.ClosingBody); err != nil {
		return nil, err
	}

	for _, c := range content.Comparisons {
		data.Comparisons = append(data.Comparisons, comparisonView{
			Comparison: c,
			DelayMs:    session.ComparisonRevealDelay.Milliseconds(),
		})
	}

	maxBar := 0
	for _, bar := range content.EnergyBars {
		maxBar = max(maxBar, bar.Value)
	}
	for _, bar := range content.EnergyBars {
		pct := 0
		if maxBar > 0 {
			pct = bar.Value * 100 / maxBar
		}
		delay := session.EnergyBarBaseDelay + time.Duration(bar.DelayMs)*time.Millisecond
		data.EnergyBars = append(data.EnergyBars, energyBarView{
			EnergyBar: bar,
			HeightPct: pct,
			DelayMs:   delay.Milliseconds(),
		})
	}

	data.Calculator = newCalculatorView(s)

	for _, cat := range content.Categories {
		data.Cards = append(data.Cards, cardView{
			UsageCategory: cat,
			Href:          href(s.With(func(c *session.Session) { c.SelectItem(cat) }), anchorUsage),
			DelayMs:       (time.Duration(cat.Rank) * session.CardRevealStep).Milliseconds(),
		})
	}
	if item, ok := s.Selected(); ok {
		data.Details = &detailsView{
			UsageCategory: item,
			CloseHref:     href(s.With((*session.Session).ClearSelection), anchorUsage),
		}
	}

	for _, tip := range content.Tips {
		data.Tips = append(data.Tips, tipView{
			Tip:      tip,
			Expanded: s.TipExpanded(tip.Number),
			Href: href(s.With(func(c *session.Session) {
				_ = c.ToggleTip(tip.Number)
			}), anchorTips),
		})
	}

	data.PledgeCount = s.PledgeCount()
	for _, opt := range content.Pledges {
		data.Pledges = append(data.Pledges, pledgeView{
			PledgeOption: opt,
			Checked:      s.Pledged(opt.Key),
			Href: href(s.With(func(c *session.Session) {
				_, _ = c.TogglePledge(opt.Key)
			}), anchorPledge),
		})
	}

	return data, nil
}

// newCalculatorView carries every non-calculator parameter through the GET
// form as hidden fields so submitting it keeps the rest of the state.
func newCalculatorView(s *session.Session) calculatorView {
	in := s.Input()
	est := s.Estimate()
	view := calculatorView{
		Queries:    in.QueryCount,
		MinQueries: greenops.MinQueries,
		MaxQueries: greenops.MaxQueries,
		Length:     int(in.LengthTier),
		LengthName: in.LengthTier.String(),
		MinLength:  int(greenops.LengthShort),
		MaxLength:  int(greenops.LengthLong),
		CO2:        greenops.FormatGrams(est.CO2Grams),
		Text:       est.DisplayText,
	}

	encoded := s.Encode()
	for _, name := range []string{session.ParamItem, session.ParamPledge, session.ParamTip} {
		for _, v := range encoded[name] {
			view.Hidden = append(view.Hidden, hiddenField{Name: name, Value: v})
		}
	}
	return view
}

func href(v url.Values, anchor string) template.URL {
	u := url.URL{Path: "/", RawQuery: v.Encode(), Fragment: anchor}
	return template.URL(u.String()) //nolint:gosec // Built from encoded values only.
}
