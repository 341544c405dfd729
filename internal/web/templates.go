package web

import "html/template"

//nolint:gochecknoglobals // Parsed once at init; template.Template is safe for concurrent Execute.
var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Copy.HeroTitle}}</title>
<style>` + pageCSS + `</style>
</head>
<body>
<header class="hero">
  <h1>{{.Copy.HeroTitle}}</h1>
  <p class="subtitle">{{.Copy.HeroSubtitle}}</p>
  <p class="hint">{{.Copy.ScrollHint}}</p>
</header>

<main>
<section class="intro">
  <p>{{.Copy.Intro}}</p>
  <div class="headline">
    <div class="figure">{{.Copy.HeadlineFigure}}</div>
    <div class="caption">{{.Copy.HeadlineCaption}}</div>
  </div>
  <p>{{.Copy.HeadlineBody}}</p>
</section>

<section id="perspective">
  <h2>{{.Copy.Headings.Perspective}}</h2>
  <div class="grid">
  {{- range .Comparisons}}
    <div class="tile reveal" style="animation-delay: {{.DelayMs}}ms">
      <div class="label">{{.Label}}</div>
      <div class="value">{{.Value}}</div>
      <div class="desc">{{.Description}}</div>
    </div>
  {{- end}}
  </div>
</section>

<section id="waste">
  <h2>{{.Copy.Headings.Waste}}</h2>
  <p>{{.Copy.WasteLead}}</p>
  {{.WasteBody}}
  <div class="chart">
  {{- range .EnergyBars}}
    <div class="bar-col">
      <div class="bar reveal-bar{{if .Highlight}} highlight{{end}}" style="height: {{.HeightPct}}%; animation-delay: {{.DelayMs}}ms"></div>
      <div class="bar-label">{{.Label}}</div>
      <div class="bar-mult">{{.Multiplier}}</div>
    </div>
  {{- end}}
  </div>
  <p class="footnote">{{.Copy.WasteFootnote}}</p>
  <div class="callout">{{.WasteCallout}}</div>
  <p class="question">{{.Copy.WasteQuestion}}</p>
</section>

<section id="calculator">
  <h2>{{.Copy.Headings.Calculator}}</h2>
  {{- with .Calculator}}
  <form class="box" method="get" action="/#calculator">
    <label for="q">{{$.Copy.Headings.QueriesLabel}} <output>{{.Queries}}</output></label>
    <input id="q" type="range" name="q" min="{{.MinQueries}}" max="{{.MaxQueries}}" value="{{.Queries}}">
    <label for="len">{{$.Copy.Headings.LengthLabel}} <output>{{.LengthName}}</output></label>
    <input id="len" type="range" name="len" min="{{.MinLength}}" max="{{.MaxLength}}" value="{{.Length}}">
    {{- range .Hidden}}
    <input type="hidden" name="{{.Name}}" value="{{.Value}}">
    {{- end}}
    <button type="submit">Calculate</button>
    <div class="result">
      <span class="co2">{{.CO2}}</span> <span class="caption">{{$.Copy.Headings.CO2Caption}}</span>
      <p class="equiv">{{.Text}}</p>
    </div>
  </form>
  {{- end}}
</section>

<section id="usage">
  <h2>{{.Copy.Headings.Usage}}</h2>
  <div class="cards">
  {{- range .Cards}}
    <a class="card reveal" href="{{.Href}}" style="animation-delay: {{.DelayMs}}ms">
      <span class="rank">#{{.Rank}}</span>
      <span class="title">{{.Title}}</span>
      <span class="short">{{.ShortDescription}}</span>
      <span class="meter"><span style="width: {{.ImpactScore}}%"></span></span>
      <span class="score">{{.ImpactScore}}/100</span>
    </a>
  {{- end}}
  </div>
</section>

<section id="tips">
  <h2>{{.Copy.Headings.Tips}}</h2>
  <ol class="tips">
  {{- range .Tips}}
    <li class="tip{{if .Expanded}} expanded{{end}}">
      <strong>{{.Title}}</strong>
      <p>{{.Description}}</p>
      {{- if .HasExamples}}
      {{- if .Expanded}}
      {{- if .BadExample}}<p class="bad">✗ {{.BadExample}}</p>{{end}}
      {{- if .GoodExample}}<p class="good">✓ {{.GoodExample}}</p>{{end}}
      <a class="toggle" href="{{.Href}}">Hide examples</a>
      {{- else}}
      <a class="toggle" href="{{.Href}}">Show examples</a>
      {{- end}}
      {{- end}}
    </li>
  {{- end}}
  </ol>
</section>

<section id="resources">
  <h2>{{.Copy.Headings.Resources}}</h2>
  <ul class="resources">
  {{- range .Resources}}
    <li><a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a> <span>{{.Description}}</span></li>
  {{- end}}
  </ul>
</section>

<section class="closing">
  <h2>{{.Copy.ClosingTitle}}</h2>
  {{.ClosingBody}}
</section>

<section id="pledge">
  <h2>{{.Copy.Headings.Pledge}}</h2>
  <p>{{.Copy.PledgeIntro}}</p>
  <ul class="pledges">
  {{- range .Pledges}}
    <li><a class="pledge{{if .Checked}} checked{{end}}" href="{{.Href}}">{{if .Checked}}☑{{else}}☐{{end}} {{.Label}}</a></li>
  {{- end}}
  </ul>
  <p class="count">{{.PledgeCount}} of {{len .Pledges}} pledged</p>
</section>
</main>

<footer>
{{- range .Copy.Footer}}
  <p>{{.}}</p>
{{- end}}
</footer>

{{- with .Details}}
<div class="modal-layer">
  <a class="overlay" href="{{.CloseHref}}" aria-label="Close"></a>
  <div class="modal" role="dialog" aria-modal="true" aria-labelledby="details-title">
    <a class="close" href="{{.CloseHref}}" aria-label="Close">×</a>
    <h3 id="details-title">{{.Title}}</h3>
    <p><strong>{{$.Copy.Headings.DetailsInvolves}}</strong> {{.ShortDescription}}</p>
    <p><strong>{{$.Copy.Headings.DetailsImpact}}</strong> {{.LongDescription}}</p>
    <div class="meter"><span style="width: {{.ImpactScore}}%"></span></div>
    <p class="score">{{.ImpactScore}}/100</p>
    <h4>{{$.Copy.Headings.DetailsTips}}</h4>
    <ul>
    {{- range .Tips}}
      <li>{{.}}</li>
    {{- end}}
    </ul>
  </div>
</div>
{{- end}}
</body>
</html>
`

const pageCSS = `
body { margin: 0; font-family: system-ui, sans-serif; background: #0f1412; color: #e6ece9; line-height: 1.6; }
main, footer { max-width: 56rem; margin: 0 auto; padding: 0 1.5rem; }
a { color: #7fd1a8; }
h2 { margin-top: 4rem; }
.hero { min-height: 90vh; display: flex; flex-direction: column; justify-content: center; align-items: center; text-align: center; }
.hero h1 { font-size: 3rem; margin: 0; }
.hint { opacity: .6; }
.headline .figure { font-size: 3rem; font-weight: 700; color: #e0a030; }
.grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(12rem, 1fr)); gap: 1rem; }
.tile, .box, .card, .modal { background: #18201c; border: 1px solid #2b3a33; border-radius: .75rem; padding: 1rem; }
.tile .value { font-size: 1.5rem; font-weight: 700; }
.reveal { opacity: 0; transform: translateY(1rem); animation: enter .6s ease-out forwards; }
.reveal-bar { transform: scaleY(0); transform-origin: bottom; animation: grow .8s ease-out forwards; }
@keyframes enter { to { opacity: 1; transform: none; } }
@keyframes grow { to { transform: scaleY(1); } }
@media (prefers-reduced-motion: reduce) { .reveal, .reveal-bar { animation: none; opacity: 1; transform: none; } }
.chart { display: flex; align-items: flex-end; gap: 1rem; height: 16rem; }
.bar-col { flex: 1; height: 100%; display: flex; flex-direction: column; justify-content: flex-end; text-align: center; }
.bar { background: #2ea66b; border-radius: .25rem .25rem 0 0; }
.bar.highlight { background: #e0a030; }
.callout { border-left: 4px solid #e0a030; padding-left: 1rem; }
.footnote { font-size: .85rem; opacity: .7; }
form.box { display: grid; gap: .5rem; }
.co2 { font-size: 2rem; font-weight: 700; color: #e0a030; }
.cards { display: grid; gap: .75rem; }
.card { display: grid; grid-template-columns: 3rem 1fr 8rem 4rem; gap: .75rem; align-items: center; text-decoration: none; color: inherit; }
.card .short { grid-column: 2 / 3; opacity: .8; }
.meter { display: block; height: .5rem; background: #2b3a33; border-radius: .25rem; overflow: hidden; }
.meter span { display: block; height: 100%; background: #2ea66b; }
.tip .bad { color: #e07a5f; }
.tip .good { color: #7fd1a8; }
.pledges { list-style: none; padding: 0; }
.pledge { text-decoration: none; color: inherit; }
.pledge.checked { color: #7fd1a8; }
footer { padding: 3rem 1.5rem; font-size: .85rem; opacity: .6; }
.modal-layer { position: fixed; inset: 0; display: flex; align-items: center; justify-content: center; }
.overlay { position: absolute; inset: 0; background: rgba(0, 0, 0, .7); }
.modal { position: relative; max-width: 36rem; max-height: 85vh; overflow-y: auto; }
.close { position: absolute; top: .5rem; right: .75rem; font-size: 1.5rem; text-decoration: none; }
`
