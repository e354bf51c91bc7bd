package imports

import (
	"regexp"
	"strings"
)

// Import is one import statement found in a file.
type Import struct {
	Statement string
	Path      string
}

// IsRelative reports whether the import path starts with ".".
func (i Import) IsRelative() bool {
	return strings.HasPrefix(i.Path, ".")
}

// Verdict is the outcome of checking one relative import.
type Verdict struct {
	Mismatch     bool
	Category     string
	ExpectedPath string
	ActualDepth  int
}

// Rule decides which imports a validator looks at and what they should be.
type Rule interface {
	// Name labels the rule in reports.
	Name() string
	// Extensions are the file-name globs the rule applies to.
	Extensions() []string
	// Extract finds the candidate imports in a file's content.
	Extract(content string) []Import
	// Check compares a relative import against the file's expected depth.
	Check(imp Import, depth int) Verdict
}

// importStatement matches `import <clause> from '<path>'` at line start.
// The clause may span lines but holds no quotes or semicolons, so side-effect
// imports (import './x.css') never swallow the next statement.
var importStatement = regexp.MustCompile(`(?m)^import\s+[^'";]*?from\s+['"]([^'"]+)['"];?`)

// leadingRun matches a path's leading ../ run.
var leadingRun = regexp.MustCompile(`^((?:\.\./)+)`)

// ResourceRule checks imports of the shared resource folders.
type ResourceRule struct {
	extensions []string
	names      []string
	runs       []*regexp.Regexp
}

// NewResourceRule builds a rule for the given resource folder names, checked in order.
func NewResourceRule(extensions, names []string) *ResourceRule {
	r := &ResourceRule{extensions: extensions, names: names}
	for _, n := range names {
		r.runs = append(r.runs, regexp.MustCompile(`^((?:\.\./)+)`+regexp.QuoteMeta(n)))
	}
	return r
}

func (r *ResourceRule) Name() string         { return "resources" }
func (r *ResourceRule) Extensions() []string { return r.extensions }

func (r *ResourceRule) Extract(content string) []Import {
	var out []Import
	for _, m := range importStatement.FindAllStringSubmatch(content, -1) {
		out = append(out, Import{Statement: strings.TrimSpace(m[0]), Path: m[1]})
	}
	return out
}

// Check attributes the path to the first resource it references whose name
// directly follows the leading ../ run. Paths with no such resource pass.
func (r *ResourceRule) Check(imp Import, depth int) Verdict {
	for i, name := range r.names {
		if !strings.Contains(imp.Path, "/"+name+"/") && !strings.HasSuffix(imp.Path, "/"+name) {
			continue
		}
		m := r.runs[i].FindStringSubmatch(imp.Path)
		if m == nil {
			continue
		}
		run := m[1]
		actual := strings.Count(run, "../")
		if actual == depth {
			return Verdict{Category: name, ActualDepth: actual}
		}
		return Verdict{
			Mismatch:     true,
			Category:     name,
			ExpectedPath: strings.Repeat("../", depth) + imp.Path[len(run):],
			ActualDepth:  actual,
		}
	}
	return Verdict{}
}

// SymbolRule pins the import path of one symbol living in dir under the
// source root: a file at depth d must import it as ("../" * d) + dir + "/" + symbol.
type SymbolRule struct {
	extensions []string
	symbol     string
	target     string
	pattern    *regexp.Regexp
}

// NewSymbolRule builds the targeted rule for symbol exported from dir.
func NewSymbolRule(extensions []string, symbol, dir string) *SymbolRule {
	q := regexp.QuoteMeta(symbol)
	return &SymbolRule{
		extensions: extensions,
		symbol:     symbol,
		target:     strings.Trim(dir, "/") + "/" + symbol,
		pattern:    regexp.MustCompile(`(?m)^import\s+[^'";]*?\b` + q + `\b[^'";]*?from\s+['"]([^'"]+)['"];?`),
	}
}

func (r *SymbolRule) Name() string         { return r.symbol }
func (r *SymbolRule) Extensions() []string { return r.extensions }

// Extract returns the first import of the symbol in the file, if any.
func (r *SymbolRule) Extract(content string) []Import {
	m := r.pattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	return []Import{{Statement: strings.TrimSpace(m[0]), Path: m[1]}}
}

// Check requires the exact expected path; any difference is a mismatch.
func (r *SymbolRule) Check(imp Import, depth int) Verdict {
	expected := strings.Repeat("../", depth) + r.target
	actual := 0
	if m := leadingRun.FindStringSubmatch(imp.Path); m != nil {
		actual = strings.Count(m[1], "../")
	}
	return Verdict{
		Mismatch:     imp.Path != expected,
		Category:     r.symbol,
		ExpectedPath: expected,
		ActualDepth:  actual,
	}
}
