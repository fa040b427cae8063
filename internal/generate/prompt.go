// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/pdiddy/blog-engine/pkg/types"
)

// promptData is the placeholder set exposed to the prompt template.
type promptData struct {
	Title    string
	Category string
	Keywords string
}

// LoadTemplate reads and parses the prompt template file. The template may
// reference {{.Title}}, {{.Category}}, and {{.Keywords}}.
func LoadTemplate(path string) (*template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prompt template %s: %w", path, err)
	}
	tmpl, err := template.New("prompt").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing prompt template %s: %w", path, err)
	}
	return tmpl, nil
}

// RenderPrompt fills the template with the topic's title, category, and
// comma-joined keywords.
func RenderPrompt(tmpl *template.Template, topic types.Topic) (string, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, promptData{
		Title:    topic.Title,
		Category: topic.Category,
		Keywords: strings.Join(topic.Keywords, ", "),
	})
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return buf.String(), nil
}
