package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/nodemeta/pkg/npmmeta"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - field labels
	colorBlue  = lipgloss.Color("75")  // Light blue - links
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleField = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleLink  = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
)

// urlLabels is the order URL entries are rendered in.
var urlLabels = []string{"homepage", "bug tracker", "repository"}

// renderMetadata prints the resolved metadata one "field: value" line per
// entry, in a fixed field order.
func renderMetadata(w io.Writer, metadata map[string]any) {
	writeField := func(label, value string, style lipgloss.Style) {
		fmt.Fprintf(w, "%s %s\n", styleField.Render(label+":"), style.Render(value))
	}

	if v, ok := metadata["description"].(string); ok {
		writeField("description", v, styleValue)
	}
	if v, ok := metadata["license"].(string); ok {
		writeField("license", v, styleValue)
	}
	if p, ok := metadata["author"].(npmmeta.Person); ok {
		writeField("author", formatPerson(p), styleValue)
	}
	if people, ok := metadata["maintainers"].([]npmmeta.Person); ok {
		for _, p := range people {
			writeField("maintainer", formatPerson(p), styleValue)
		}
	}
	if keywords, ok := metadata["keywords"].([]any); ok {
		parts := make([]string, 0, len(keywords))
		for _, k := range keywords {
			if s, ok := k.(string); ok {
				parts = append(parts, s)
			}
		}
		writeField("keywords", strings.Join(parts, ", "), styleDim)
	}
	if urls, ok := metadata["urls"].(map[string]any); ok {
		for _, label := range urlLabels {
			if u, ok := urls[label].(string); ok {
				writeField(label, u, styleLink)
			}
		}
	}
}

// formatPerson renders a person the way npm writes author shorthands.
func formatPerson(p npmmeta.Person) string {
	if p.Email != "" {
		return fmt.Sprintf("%s <%s>", p.Name, p.Email)
	}
	return p.Name
}
