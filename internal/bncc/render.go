package bncc

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/module.js.tmpl
var moduleTemplate string

var moduleTmpl = template.Must(template.New("module").Funcs(template.FuncMap{
	"quote": quoteJS,
	"last":  func(i int) bool { return i == len(bands)-1 },
}).Parse(moduleTemplate))

// Render produces the JavaScript module for t. Output depends only on t.
func Render(t *Tree) ([]byte, error) {
	var buf bytes.Buffer
	err := moduleTmpl.Execute(&buf, struct {
		Bands []Band
		Data  string
	}{
		Bands: Bands(),
		Data:  Literal(t),
	})
	if err != nil {
		return nil, fmt.Errorf("render module: %w", err)
	}
	return buf.Bytes(), nil
}

// Literal renders the tree as a JavaScript object literal with two-space
// indentation and single-quoted strings.
func Literal(t *Tree) string {
	var w literalWriter
	w.open('{')
	for i, e := range t.entries {
		w.key(string(e.Band.Key), i == 0)
		w.open('{')
		w.key("titulo", true)
		w.str(e.Band.Title)
		w.key(e.Band.Stage.GroupsField(), false)
		if len(e.Groups) == 0 {
			w.b.WriteString("{}")
		} else {
			w.open('{')
			for j, g := range e.Groups {
				w.key(g.Name, j == 0)
				w.open('[')
				for k, r := range g.Records {
					w.item(k == 0)
					w.open('{')
					w.key("codigo", true)
					w.str(r.Code)
					w.key("descricao", false)
					w.str(r.Description)
					w.close('}')
				}
				w.close(']')
			}
			w.close('}')
		}
		w.close('}')
	}
	w.close('}')
	return w.b.String()
}

type literalWriter struct {
	b     strings.Builder
	depth int
}

func (w *literalWriter) newline() {
	w.b.WriteByte('\n')
	w.b.WriteString(strings.Repeat("  ", w.depth))
}

func (w *literalWriter) open(c byte) {
	w.b.WriteByte(c)
	w.depth++
}

// close ends the innermost container with the given closing bracket.
func (w *literalWriter) close(c byte) {
	w.depth--
	w.newline()
	w.b.WriteByte(c)
}

// item starts a new element of the enclosing container.
func (w *literalWriter) item(first bool) {
	if !first {
		w.b.WriteByte(',')
	}
	w.newline()
}

func (w *literalWriter) key(k string, first bool) {
	w.item(first)
	w.str(k)
	w.b.WriteString(": ")
}

func (w *literalWriter) str(s string) {
	w.b.WriteString(quoteJS(s))
}

// quoteJS returns s as a single-quoted JavaScript string literal.
func quoteJS(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
