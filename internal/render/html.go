package render

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/Conceptual-Machines/rug-loom/internal/rug"
	"github.com/a-h/templ"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Caption is the title block shown above a preview
type Caption struct {
	Name        string
	Description string
}

// safeColor keeps only hex literals so nothing else reaches a style attribute
func safeColor(c string) string {
	if hexColor.MatchString(c) {
		return c
	}
	return "#000000"
}

// HTML renders grid as a standalone preview page
func HTML(grid rug.Grid, cfg rug.Config, caption Caption) templ.Component {
	chrome := "#f5f5f4"
	if cfg.IsLight() {
		chrome = "#1c1917"
	}
	body := templ.Join(captionBlock(caption), rugBlock(grid, cfg))
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		shell := pageShell(caption.Name, safeColor(rug.ResolveColor(rug.RoleBackground, cfg)), chrome)
		return shell.Render(templ.WithChildren(ctx, body), w)
	})
}

// pageShell wraps its children in the document and body styling
func pageShell(title, background, color string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title></head>`+
				`<body style="margin:0;padding:2rem;background:%s;color:%s;font-family:serif">`,
			templ.EscapeString(title), background, color); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(templ.ClearChildren(ctx), w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// captionBlock renders the theme name and description, or nothing without a name
func captionBlock(caption Caption) templ.Component {
	if caption.Name == "" {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<header><h1>%s</h1><p><em>%s</em></p></header>`,
			templ.EscapeString(caption.Name), templ.EscapeString(caption.Description))
		return err
	})
}

// rugBlock renders the grid as one coloured span per run
func rugBlock(grid rug.Grid, cfg rug.Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<pre class="rug" style="font-family:monospace;line-height:1;letter-spacing:0">`); err != nil {
			return err
		}
		for y, runs := range Runs(grid) {
			if y > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			for _, run := range runs {
				color := safeColor(rug.ResolveColor(run.Role, cfg))
				if _, err := fmt.Fprintf(w, `<span style="color:%s">%s</span>`, color, templ.EscapeString(run.Text)); err != nil {
					return err
				}
			}
		}
		_, err := io.WriteString(w, `</pre>`)
		return err
	})
}
