package command

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

// Variant selects which fixed template body a new command file gets.
type Variant string

const (
	// VariantSimple is the default prompt-only template.
	VariantSimple Variant = "simple"
	// VariantTools adds an allowed-tools frontmatter field plus
	// Context and Task sections for commands that run shell context.
	VariantTools Variant = "tools"
)

type templateData struct {
	Name string
}

// Render produces the full file content for a command name. Only the name
// varies; the template bodies themselves are fixed.
func Render(variant Variant, name string) (string, error) {
	file := fmt.Sprintf("templates/%s.md.tmpl", variant)
	tmpl, err := template.ParseFS(templateFS, file)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", file, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Name: name}); err != nil {
		return "", fmt.Errorf("executing template %s: %w", file, err)
	}
	return buf.String(), nil
}
