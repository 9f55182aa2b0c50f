// Package prompts renders named templates against per-operation data
// contexts into final request text.
package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Ranatar/philosophical-concepts-service/internal/templates"
)

// Builder renders prompt templates. Rendering always succeeds for a known
// template: missing context values degrade to empty substitutions with a
// warning instead of failing the operation.
type Builder struct {
	store *templates.Store
}

// NewBuilder creates a Builder over the given template store.
func NewBuilder(store *templates.Store) *Builder {
	return &Builder{store: store}
}

// Render fetches the named template and substitutes every declared
// parameter. Non-string values are serialized as indented JSON. Placeholders
// that are not declared parameters are left untouched.
func (b *Builder) Render(templateName string, vars map[string]any) (string, error) {
	t, err := b.store.Get(templateName)
	if err != nil {
		return "", err
	}

	text := t.Text
	for _, name := range t.Parameters {
		value, ok := vars[name]
		if !ok {
			log.Warn().
				Str("template", templateName).
				Str("parameter", name).
				Msg("prompt parameter missing, substituting empty string")
		}
		text = strings.ReplaceAll(text, placeholder(name), stringify(value))
	}
	return text, nil
}

func placeholder(name string) string {
	return "{{" + name + "}}"
}

// stringify turns a context value into prompt text. Strings pass through;
// everything else becomes two-space-indented JSON so the model sees
// structure rather than Go syntax.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
