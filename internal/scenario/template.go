package scenario

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/kballard/go-shellquote"
)

// funcMap is sprig's text function set plus shellquote, which quotes values
// so they survive command line tokenization as single words.
func funcMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["shellquote"] = func(words ...string) string {
		return shellquote.Join(words...)
	}
	return fm
}

func parseTemplate(text string) (*template.Template, error) {
	tmpl, err := template.New("command").
		Funcs(funcMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid command template: %w", err)
	}
	return tmpl, nil
}

// renderCommand expands a step's command template against vars. Referencing
// a variable that was never set or captured is an error.
func renderCommand(text string, vars map[string]string) (string, error) {
	tmpl, err := parseTemplate(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to render command: %w", err)
	}
	return buf.String(), nil
}

// render returns a copy of e with every string value expanded as a template
// against vars, so expectations can refer to captured values.
func (e *Expect) render(vars map[string]string) (*Expect, error) {
	if e == nil {
		return nil, nil
	}

	out := *e
	var err error
	if out.Contains, err = renderMap(e.Contains, vars); err != nil {
		return nil, err
	}
	if out.NotContains, err = renderMap(e.NotContains, vars); err != nil {
		return nil, err
	}
	if out.Fields, err = renderMap(e.Fields, vars); err != nil {
		return nil, err
	}
	if len(e.OutputContains) > 0 {
		out.OutputContains = make([]string, len(e.OutputContains))
		for i, s := range e.OutputContains {
			if out.OutputContains[i], err = renderCommand(s, vars); err != nil {
				return nil, err
			}
		}
	}
	return &out, nil
}

func renderMap(m map[string]string, vars map[string]string) (map[string]string, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		rendered, err := renderCommand(v, vars)
		if err != nil {
			return nil, fmt.Errorf("expectation %q: %w", k, err)
		}
		out[k] = rendered
	}
	return out, nil
}
