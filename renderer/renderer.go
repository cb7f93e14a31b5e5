// Package renderer turns engine views into Markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/networth"
)

//go:embed *.md
var templates embed.FS

// ViewRenderOptions holds configuration for rendering a view.
type ViewRenderOptions struct {
	Width        int  // chart width in characters, DefaultWidth when zero
	SkipHoldings bool // Do not render the holdings section.
}

// viewData is what the view templates are executed with.
type viewData struct {
	Currency string
	Latest   networth.Money
	Summary  networth.Summary
	Empty    bool
	Chart    string
	Holdings string
}

// RenderView renders a recomputed View to a markdown string.
func RenderView(v *networth.View, opts ViewRenderOptions) string {
	partials := map[string]string{
		"view_title":   "view_title.md",
		"view_summary": "view_summary.md",
		"view_chart":   "view_chart.md",
	}
	// An empty file name results in an empty template.
	if !opts.SkipHoldings {
		partials["view_holdings"] = "view_holdings.md"
	} else {
		partials["view_holdings"] = ""
	}

	data := viewData{
		Currency: v.Currency,
		Latest:   v.Latest,
		Summary:  v.Summary,
		Empty:    v.Chart.IsEmpty(),
		Chart:    PlotChart(v.Chart, opts.Width),
		Holdings: HoldingsMarkdown(v.Positions),
	}
	return renderTemplate("view", "view.md", partials, data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
