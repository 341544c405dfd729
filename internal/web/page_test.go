package web

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/mindful/internal/catalog"
	"github.com/rshade/mindful/internal/session"
)

func renderDoc(t *testing.T, s *session.Session) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, s))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func sessionFrom(t *testing.T, query string) *session.Session {
	t.Helper()
	v, err := url.ParseQuery(query)
	require.NoError(t, err)
	s, err := session.FromValues(v, catalog.Default())
	require.NoError(t, err)
	return s
}

func TestRenderPage_Defaults(t *testing.T) {
	doc := renderDoc(t, session.NewSession(catalog.Default()))

	assert.Equal(t, "The Weight of Intelligence", doc.Find("h1").Text())
	assert.Equal(t, 11, doc.Find("a.card").Length())
	assert.Equal(t, 4, doc.Find(".tile").Length())
	assert.Equal(t, 5, doc.Find(".bar").Length())
	assert.Equal(t, 8, doc.Find("ol.tips li").Length())
	assert.Equal(t, 0, doc.Find(".modal").Length(), "no modal without a selection")

	assert.Equal(t, "50g", doc.Find(".co2").Text())
	assert.Contains(t, doc.Find(".equiv").Text(), "0.2 miles")
	assert.Equal(t, "0 of 5 pledged", doc.Find(".count").Text())

	q, ok := doc.Find("input#q").Attr("value")
	require.True(t, ok)
	assert.Equal(t, "10", q)
	assert.Equal(t, 0, doc.Find("input[type=hidden]").Length())

	// Markdown prose is rendered, not shown raw.
	assert.Equal(t, 1, doc.Find(".callout strong").Length())
	assert.NotContains(t, doc.Text(), "**")
}

func TestRenderPage_ResourcesOpenInNewContext(t *testing.T) {
	doc := renderDoc(t, session.NewSession(catalog.Default()))

	links := doc.Find("ul.resources a")
	assert.Equal(t, len(catalog.Default().Resources), links.Length())
	links.Each(func(_ int, a *goquery.Selection) {
		target, _ := a.Attr("target")
		rel, _ := a.Attr("rel")
		assert.Equal(t, "_blank", target)
		assert.Equal(t, "noopener noreferrer", rel)
	})
}

func TestRenderPage_CardLinksSelectItem(t *testing.T) {
	doc := renderDoc(t, sessionFrom(t, "q=20&pledge=batch"))

	href, ok := doc.Find("a.card").Eq(2).Attr("href")
	require.True(t, ok)
	u, err := url.Parse(href)
	require.NoError(t, err)

	assert.Equal(t, "3", u.Query().Get(session.ParamItem))
	assert.Equal(t, "20", u.Query().Get(session.ParamQueries), "other state is carried")
	assert.Equal(t, []string{"batch"}, u.Query()[session.ParamPledge])
	assert.Equal(t, "usage", u.Fragment)
}

func TestRenderPage_Modal(t *testing.T) {
	doc := renderDoc(t, sessionFrom(t, "item=2&tip=1"))

	modal := doc.Find(".modal")
	require.Equal(t, 1, modal.Length())
	cat, _ := catalog.ByRank(2)
	assert.Equal(t, cat.Title, modal.Find("h3").Text())
	assert.Contains(t, modal.Text(), "What it involves:")
	assert.Contains(t, modal.Text(), "Environmental impact:")
	assert.Equal(t, len(cat.Tips), modal.Find("li").Length())

	closeHref, ok := doc.Find(".modal .close").Attr("href")
	require.True(t, ok)
	u, err := url.Parse(closeHref)
	require.NoError(t, err)
	assert.Empty(t, u.Query().Get(session.ParamItem))
	assert.Equal(t, "1", u.Query().Get(session.ParamTip))

	overlay, _ := doc.Find("a.overlay").Attr("href")
	assert.Equal(t, closeHref, overlay)

	// The selection rides along in the calculator form.
	assert.Equal(t, 1, doc.Find(`input[type=hidden][name=item][value="2"]`).Length())
}

func TestRenderPage_PledgeLinksToggle(t *testing.T) {
	doc := renderDoc(t, sessionFrom(t, "pledge=reuse"))

	assert.Equal(t, "1 of 5 pledged", doc.Find(".count").Text())
	checked := doc.Find("a.pledge.checked")
	require.Equal(t, 1, checked.Length())
	assert.Contains(t, checked.Text(), "☑")

	href, _ := checked.Attr("href")
	u, err := url.Parse(href)
	require.NoError(t, err)
	assert.Empty(t, u.Query()[session.ParamPledge], "following a checked pledge unchecks it")

	href, _ = doc.Find("a.pledge").First().Attr("href")
	u, err = url.Parse(href)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"batch", "reuse"}, u.Query()[session.ParamPledge])
}

func TestRenderPage_TipExpansion(t *testing.T) {
	collapsed := renderDoc(t, session.NewSession(catalog.Default()))
	assert.Equal(t, 0, collapsed.Find(".tip .bad").Length())

	expanded := renderDoc(t, sessionFrom(t, "tip=1"))
	first := expanded.Find("li.tip").First()
	assert.True(t, first.HasClass("expanded"))
	assert.Equal(t, 1, first.Find(".bad").Length())
	assert.Equal(t, "Hide examples", first.Find("a.toggle").Text())
}

func TestRenderPage_RevealDelays(t *testing.T) {
	doc := renderDoc(t, session.NewSession(catalog.Default()))

	style, _ := doc.Find("a.card").Eq(4).Attr("style")
	assert.Contains(t, style, "animation-delay: 500ms")

	style, _ = doc.Find(".tile").First().Attr("style")
	assert.Contains(t, style, "animation-delay: 100ms")

	style, _ = doc.Find(".bar").Last().Attr("style")
	assert.Contains(t, style, "height: 100%")
	assert.Contains(t, style, "animation-delay: 1300ms")
}
