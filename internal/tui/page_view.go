package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rshade/mindful/internal/catalog"
	"github.com/rshade/mindful/internal/greenops"
	"github.com/rshade/mindful/internal/session"
	listview "github.com/rshade/mindful/internal/tui/list"
)

// Section identifies a part of the page that receives keys.
type Section int

const (
	// SectionCalculator holds the two sliders.
	SectionCalculator Section = iota
	// SectionCards is the usage category list.
	SectionCards
	// SectionTips is the expandable tip list.
	SectionTips
	// SectionPledges is the pledge checklist.
	SectionPledges

	sectionCount
	sectionNone Section = -1
)

// String returns the section name.
func (s Section) String() string {
	switch s {
	case SectionCalculator:
		return "calculator"
	case SectionCards:
		return "cards"
	case SectionTips:
		return "tips"
	case SectionPledges:
		return "pledges"
	default:
		return "none"
	}
}

type slider int

const (
	sliderQueries slider = iota
	sliderLength
)

// Layout constants.
const (
	minContentWidth  = 40
	maxContentWidth  = 100
	meterWidth       = 30
	impactMeterWidth = 20
	energyLabelWidth = 46
	comparisonLabel  = 22
	comparisonValue  = 14
	cardTitleWidth   = 32
	modalMaxWidth    = 72
	modalChrome      = 6 // border plus horizontal padding
	percentScale     = 100
	hiddenMarker     = "·"
	sectionGap       = "\n\n"
)

// pageFocus carries the interactive state that changes how sections render.
// The zero value renders the static page.
type pageFocus struct {
	active  bool
	section Section
	slider  slider
	cards   *listview.VirtualListModel[catalog.UsageCategory]
	tip     int
	pledge  int
}

// pageRenderer turns a session into terminal text.
type pageRenderer struct {
	content *catalog.Content
	session *session.Session
	width   int
	plain   bool

	meter    progress.Model
	hotMeter progress.Model
	impact   progress.Model
}

func newPageRenderer(content *catalog.Content, s *session.Session, width int, plain bool) *pageRenderer {
	return &pageRenderer{
		content:  content,
		session:  s,
		width:    contentWidth(width),
		plain:    plain,
		meter:    newMeter(meterWidth, barFillColor, plain),
		hotMeter: newMeter(meterWidth, barHighlightColor, plain),
		impact:   newMeter(impactMeterWidth, barFillColor, plain),
	}
}

func newMeter(width int, color string, plain bool) progress.Model {
	opts := []progress.Option{
		progress.WithWidth(width),
		progress.WithoutPercentage(),
		progress.WithSolidFill(color),
	}
	if plain {
		opts = append(opts,
			progress.WithFillCharacters('#', '.'),
			progress.WithColorProfile(termenv.Ascii),
		)
	}
	return progress.New(opts...)
}

func contentWidth(terminalWidth int) int {
	return min(max(terminalWidth-4, minContentWidth), maxContentWidth)
}

// render returns the page and the line each focusable section starts on.
func (r *pageRenderer) render(f pageFocus) (string, map[Section]int) {
	blocks := []struct {
		section Section
		body    string
	}{
		{sectionNone, r.hero()},
		{sectionNone, r.intro()},
		{sectionNone, r.comparisons()},
		{sectionNone, r.energy()},
		{SectionCalculator, r.calculator(f)},
		{SectionCards, r.cards(f)},
		{SectionTips, r.tips(f)},
		{sectionNone, r.resources()},
		{sectionNone, r.closing()},
		{SectionPledges, r.pledges(f)},
		{sectionNone, r.footer()},
	}

	offsets := make(map[Section]int, int(sectionCount))
	var b strings.Builder
	line := 0
	for i, blk := range blocks {
		if i > 0 {
			b.WriteString(sectionGap)
			line += strings.Count(sectionGap, "\n")
		}
		if blk.section != sectionNone {
			offsets[blk.section] = line
		}
		b.WriteString(blk.body)
		line += strings.Count(blk.body, "\n")
	}
	return b.String(), offsets
}

func (r *pageRenderer) paint(st lipgloss.Style, s string) string {
	if r.plain {
		return s
	}
	return st.Render(s)
}

func (r *pageRenderer) heading(s string) string {
	return r.paint(HeaderStyle, strings.ToUpper(s))
}

func (r *pageRenderer) wrap(s string) string {
	return wrapTo(s, r.width)
}

// wrapTo word-wraps s to width columns without trailing padding.
func wrapTo(s string, width int) string {
	lines := strings.Split(lipgloss.NewStyle().Width(width).Render(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}

func column(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func (r *pageRenderer) box(body string, focused bool) string {
	if r.plain {
		return indent(body, 2)
	}
	st := BoxStyle
	if focused {
		st = FocusedBoxStyle
	}
	return st.Width(r.width - 2).Render(body)
}

func (r *pageRenderer) cursor(on bool) string {
	if on {
		return r.paint(InfoStyle, "▸ ")
	}
	return "  "
}

func (r *pageRenderer) hero() string {
	c := r.content.Copy
	return strings.Join([]string{
		r.paint(TitleStyle, c.HeroTitle),
		r.paint(InfoStyle, c.HeroSubtitle),
		r.paint(SubtleStyle, c.ScrollHint),
	}, "\n")
}

func (r *pageRenderer) intro() string {
	c := r.content.Copy
	return strings.Join([]string{
		r.wrap(c.Intro),
		"",
		r.paint(EmphasisStyle, c.HeadlineFigure) + "  " + r.paint(LabelStyle, c.HeadlineCaption),
		r.wrap(c.HeadlineBody),
	}, "\n")
}

func (r *pageRenderer) comparisons() string {
	lines := []string{r.heading(r.content.Copy.Headings.Perspective)}
	for i, cmp := range r.content.Comparisons {
		if !r.session.Reveals().Visible(catalog.ComparisonRevealID(i)) {
			lines = append(lines, r.paint(SubtleStyle, hiddenMarker))
			continue
		}
		lines = append(lines, column(cmp.Label, comparisonLabel)+
			r.paint(ValueStyle, column(cmp.Value, comparisonValue))+
			r.paint(SubtleStyle, cmp.Description))
	}
	return strings.Join(lines, "\n")
}

func (r *pageRenderer) energy() string {
	c := r.content.Copy
	lines := []string{
		r.heading(c.Headings.Waste),
		r.wrap(c.WasteLead),
		r.wrap(r.inlineMarkdown(c.WasteBody)),
		"",
	}

	peak := 0
	for _, bar := range r.content.EnergyBars {
		peak = max(peak, bar.Value)
	}
	for i, bar := range r.content.EnergyBars {
		frac := 0.0
		if peak > 0 && r.session.Reveals().Visible(catalog.EnergyBarRevealID(i)) {
			frac = float64(bar.Value) / float64(peak)
		}
		label := column(bar.Label, energyLabelWidth)
		meter := r.meter.ViewAs(frac)
		if bar.Highlight {
			label = r.paint(EmphasisStyle, label)
			meter = r.hotMeter.ViewAs(frac)
		}
		lines = append(lines, label+meter+" "+r.paint(ValueStyle, bar.Multiplier))
	}

	lines = append(lines,
		"",
		r.wrap(r.inlineMarkdown(c.WasteCallout)),
		r.wrap(c.WasteQuestion),
		r.paint(SubtleStyle, r.wrap(c.WasteFootnote)),
	)
	return strings.Join(lines, "\n")
}

func (r *pageRenderer) calculator(f pageFocus) string {
	h := r.content.Copy.Headings
	in := r.session.Input()
	est := r.session.Estimate()
	focused := f.active && f.section == SectionCalculator

	queryFrac := float64(in.QueryCount-greenops.MinQueries) / float64(greenops.MaxQueries-greenops.MinQueries)
	tierFrac := float64(in.LengthTier-greenops.LengthShort) / float64(greenops.LengthLong-greenops.LengthShort)

	rows := []string{
		r.paint(LabelStyle, h.QueriesLabel) + " " + r.paint(InfoStyle, strconv.Itoa(in.QueryCount)),
		r.sliderLine(queryFrac, focused && f.slider == sliderQueries),
		r.paint(LabelStyle, h.LengthLabel) + " " + r.paint(InfoStyle, in.LengthTier.String()),
		r.sliderLine(tierFrac, focused && f.slider == sliderLength),
		"",
		r.paint(WarningStyle.Bold(true), greenops.FormatGrams(est.CO2Grams)) + " " + r.paint(LabelStyle, h.CO2Caption),
		est.DisplayText,
	}
	return r.heading(h.Calculator) + "\n" + r.box(strings.Join(rows, "\n"), focused)
}

func (r *pageRenderer) sliderLine(frac float64, focused bool) string {
	return r.cursor(focused) + "◀ " + r.meter.ViewAs(frac) + " ▶"
}

func (r *pageRenderer) cards(f pageFocus) string {
	var body string
	if f.cards != nil {
		f.cards.SetFocused(f.active && f.section == SectionCards)
		body = f.cards.View()
	} else {
		lines := make([]string, 0, len(r.content.Categories))
		for i, cat := range r.content.Categories {
			lines = append(lines, r.cardLine(i, cat, false, false))
		}
		body = strings.Join(lines, "\n")
		if item, ok := r.session.Selected(); ok {
			body += sectionGap + r.details(item)
		}
	}
	return r.heading(r.content.Copy.Headings.Usage) + "\n" + body
}

// cardLine renders one usage card as two lines. It satisfies
// listview.RenderFunc.
func (r *pageRenderer) cardLine(_ int, cat catalog.UsageCategory, selected, focused bool) string {
	if !r.session.Reveals().Visible(cat.RevealID()) {
		return r.paint(SubtleStyle, "  "+hiddenMarker) + "\n"
	}

	active := selected && focused
	title := column(fmt.Sprintf("%2d. %s", cat.Rank, cat.Title), cardTitleWidth)
	if active {
		title = r.paint(TableSelectedStyle, title)
	} else {
		title = r.paint(ValueStyle, title)
	}
	score := float64(cat.ImpactScore) / percentScale
	first := r.cursor(active) + title + " " + r.impact.ViewAs(score) + " " +
		r.paint(LabelStyle, fmt.Sprintf("%3d", cat.ImpactScore))
	return first + "\n" + indent(r.paint(SubtleStyle, cat.ShortDescription), 6)
}

// details renders the modal body for item.
func (r *pageRenderer) details(item catalog.UsageCategory) string {
	h := r.content.Copy.Headings
	width := min(r.width, modalMaxWidth) - modalChrome

	lines := []string{
		r.paint(HeaderStyle, item.Title),
		"",
		wrapTo(r.paint(ValueStyle, h.DetailsInvolves)+" "+item.ShortDescription, width),
		"",
		wrapTo(r.paint(ValueStyle, h.DetailsImpact)+" "+item.LongDescription, width),
		r.impact.ViewAs(float64(item.ImpactScore)/percentScale) + " " +
			r.paint(LabelStyle, fmt.Sprintf("%d/100", item.ImpactScore)),
		"",
		r.paint(InfoStyle, h.DetailsTips),
	}
	for _, tip := range item.Tips {
		lines = append(lines, wrapTo(r.paint(InfoStyle, "•")+" "+tip, width))
	}
	lines = append(lines, "", r.paint(SubtleStyle, "esc/x or any key to close"))

	body := strings.Join(lines, "\n")
	if r.plain {
		return indent(body, 2)
	}
	return ModalStyle.Width(width + 4).Render(body)
}

func (r *pageRenderer) tips(f pageFocus) string {
	focused := f.active && f.section == SectionTips
	blocks := make([]string, 0, len(r.content.Tips))
	for i, tip := range r.content.Tips {
		current := focused && i == f.tip
		title := fmt.Sprintf("%d. %s", tip.Number, tip.Title)
		lines := []string{
			r.cursor(current) + r.paint(ValueStyle, title),
			indent(wrapTo(tip.Description, r.width-4), 4),
		}

		// The static page has no way to expand, so it shows everything.
		expanded := !f.active || r.session.TipExpanded(tip.Number)
		switch {
		case tip.HasExamples() && expanded:
			if tip.BadExample != "" {
				lines = append(lines, indent(r.paint(WarningStyle, wrapTo("✗ "+tip.BadExample, r.width-6)), 4))
			}
			if tip.GoodExample != "" {
				lines = append(lines, indent(r.paint(InfoStyle, wrapTo("✓ "+tip.GoodExample, r.width-6)), 4))
			}
		case tip.HasExamples() && current:
			lines = append(lines, indent(r.paint(SubtleStyle, "enter: show examples"), 4))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return r.heading(r.content.Copy.Headings.Tips) + "\n" + strings.Join(blocks, "\n\n")
}

func (r *pageRenderer) resources() string {
	lines := []string{r.heading(r.content.Copy.Headings.Resources)}
	for _, res := range r.content.Resources {
		lines = append(lines,
			"  "+r.paint(ValueStyle, res.Title),
			"    "+r.paint(LabelStyle, res.Description),
			"    "+r.paint(InfoStyle.Underline(true), res.URL),
		)
	}
	return strings.Join(lines, "\n")
}

func (r *pageRenderer) closing() string {
	c := r.content.Copy
	return r.paint(TitleStyle, c.ClosingTitle) + "\n" + r.wrap(r.inlineMarkdown(c.ClosingBody))
}

func (r *pageRenderer) pledges(f pageFocus) string {
	focused := f.active && f.section == SectionPledges
	checked := r.session.Pledges()

	lines := []string{r.heading(r.content.Copy.Headings.Pledge), r.wrap(r.content.Copy.PledgeIntro), ""}
	for i, opt := range r.content.Pledges {
		mark := "[ ]"
		label := opt.Label
		if checked[opt.Key] {
			mark = "[x]"
			label = r.paint(InfoStyle, label)
		}
		lines = append(lines, r.cursor(focused && i == f.pledge)+mark+" "+label)
	}
	lines = append(lines, "", r.paint(SubtleStyle,
		fmt.Sprintf("%d of %d pledged", checked.Count(), len(r.content.Pledges))))
	return strings.Join(lines, "\n")
}

func (r *pageRenderer) footer() string {
	lines := make([]string, 0, len(r.content.Copy.Footer))
	for _, l := range r.content.Copy.Footer {
		lines = append(lines, r.paint(SubtleStyle, r.wrap(l)))
	}
	return strings.Join(lines, "\n")
}
