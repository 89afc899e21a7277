// Package markdown renders markdown text for terminal output.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	internalstrings "github.com/TechieBelle/taskboard/internal/strings"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text for terminal output at the given width.
// Rendering failures fall back to the normalized input text.
func Render(width int, input string) string {
	value := internalstrings.NormalizeNewlines(input)
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	rendered := value
	if formatted, err := safeRender(markdownRenderer(width), value); err == nil {
		rendered = formatted
	}
	return internalstrings.TrimTrailingNewlines(rendered)
}

// safeRender recovers from renderer panics and falls back to the
// plain input text.
func safeRender(r renderer, value string) (result string, err error) {
	if r == nil {
		return value, nil
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			result = value
			err = nil
		}
	}()
	return r.Render(value)
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}
