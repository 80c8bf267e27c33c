// Package export renders assembled CVs to HTML and prints them to PDF
// through headless Chrome.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/gedeon/andikacv/internal/assemble"
	"github.com/gedeon/andikacv/internal/i18n"
)

// accentColors maps a template category to its heading color. Unknown
// categories render with the modern accent.
var accentColors = map[string]string{
	"modern":      "#16a34a",
	"traditional": "#1f2937",
	"creative":    "#7c3aed",
	"minimal":     "#0369a1",
}

// skillGroup carries a category with its skill list pre-joined for the
// template.
type skillGroup struct {
	Name   string
	Skills string
}

type templateData struct {
	CV      assemble.RenderedCV
	Groups  []skillGroup
	Accent  template.CSS
	Heading func(string) string
}

var cvTemplate = template.Must(template.New("cv").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 18mm 16mm; }
  body { font-family: "Helvetica Neue", Arial, sans-serif; color: #111827; font-size: 11pt; line-height: 1.45; }
  h1 { font-size: 20pt; margin: 0 0 2pt; }
  h2 { font-size: 12pt; color: {{.Accent}}; border-bottom: 1px solid {{.Accent}}; padding-bottom: 2pt; margin: 14pt 0 6pt; text-transform: uppercase; letter-spacing: 0.5pt; }
  .contact { color: #4b5563; font-size: 9.5pt; margin-bottom: 4pt; }
  .item { margin-bottom: 8pt; }
  .item-head { display: flex; justify-content: space-between; }
  .item-title { font-weight: 600; }
  .item-sub { color: #4b5563; font-size: 10pt; }
  .dates { color: #6b7280; font-size: 9.5pt; }
  ul { margin: 3pt 0 0 14pt; padding: 0; }
</style>
</head>
<body>
<h1>{{.CV.Name}}</h1>
{{range .CV.ContactLines}}<div class="contact">{{.}}</div>
{{end}}
{{if .CV.Summary}}<h2>{{call .Heading "summary"}}</h2>
<p>{{.CV.Summary}}</p>
{{end}}
{{if .CV.Experience}}<h2>{{call .Heading "experience"}}</h2>
{{range .CV.Experience}}<div class="item">
  <div class="item-head"><span class="item-title">{{.JobTitle}}</span><span class="dates">{{.DateRange}}</span></div>
  <div class="item-sub">{{.Company}}{{if .Location}} &middot; {{.Location}}{{end}}</div>
  {{if .Lines}}<ul>{{range .Lines}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}{{end}}
{{if .CV.Education}}<h2>{{call .Heading "education"}}</h2>
{{range .CV.Education}}<div class="item">
  <div class="item-head"><span class="item-title">{{.Degree}}</span><span class="dates">{{.DateRange}}</span></div>
  <div class="item-sub">{{.Institution}}{{if .Location}} &middot; {{.Location}}{{end}}{{if .GPA}} &middot; GPA {{.GPA}}{{end}}</div>
  {{if .Description}}<p>{{.Description}}</p>{{end}}
</div>
{{end}}{{end}}
{{if .Groups}}<h2>{{call .Heading "skills"}}</h2>
{{range .Groups}}<div class="item"><span class="item-title">{{.Name}}:</span> {{.Skills}}</div>
{{end}}{{end}}
{{if .CV.Languages}}<h2>{{call .Heading "languages"}}</h2>
{{range .CV.Languages}}<div class="item">{{.Language}} <span class="item-sub">({{.Proficiency}})</span></div>
{{end}}{{end}}
{{if .CV.Certifications}}<h2>{{call .Heading "certifications"}}</h2>
{{range .CV.Certifications}}<div class="item">
  <div class="item-head"><span class="item-title">{{.Name}}</span><span class="dates">{{.IssueDate}}{{if .ExpiryDate}} - {{.ExpiryDate}}{{end}}</span></div>
  <div class="item-sub">{{.Organization}}{{if .CredentialID}} &middot; {{.CredentialID}}{{end}}</div>
</div>
{{end}}{{end}}
{{if .CV.References}}<h2>{{call .Heading "references"}}</h2>
{{range .CV.References}}<div class="item">
  <span class="item-title">{{.Name}}</span><div class="item-sub">{{.JobTitle}}{{if .Company}}, {{.Company}}{{end}}</div>
  <div class="item-sub">{{.Email}}{{if .Phone}} &middot; {{.Phone}}{{end}}</div>
</div>
{{end}}{{end}}
</body>
</html>`))

// templateCategory reduces a catalog ID like "modern-1" to its category.
func templateCategory(templateID string) string {
	if i := strings.IndexByte(templateID, '-'); i > 0 {
		return templateID[:i]
	}
	return templateID
}

// HTML renders the assembled CV as a standalone A4-styled page. templateID
// selects the accent color by category; section headings come from the
// translator.
func HTML(cv assemble.RenderedCV, templateID string, t *i18n.Translator) (string, error) {
	if t == nil {
		t = i18n.New(i18n.English)
	}
	accent, ok := accentColors[templateCategory(templateID)]
	if !ok {
		accent = accentColors["modern"]
	}
	data := templateData{
		CV:     cv,
		Accent: template.CSS(accent),
		Heading: func(section string) string {
			return t.T("cv.section." + section)
		},
	}
	for _, g := range cv.Skills {
		data.Groups = append(data.Groups, skillGroup{Name: g.Name, Skills: strings.Join(g.Skills, ", ")})
	}
	var buf bytes.Buffer
	if err := cvTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render cv html: %w", err)
	}
	return buf.String(), nil
}
