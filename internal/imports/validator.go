package imports

import (
	"path/filepath"

	"elotools/internal/logging"
	"elotools/internal/textio"
)

// Options configures a validation run. All paths are explicit; nothing is global.
type Options struct {
	// DepthRoot is the source root expected depths are measured from.
	DepthRoot string
	// ScanRoot is the subtree whose files are validated.
	ScanRoot string
	// Ignore lists directory names or globs (relative to ScanRoot) to skip.
	Ignore []string
}

// Mismatch is one import whose path does not match the file's depth.
type Mismatch struct {
	File          string
	Statement     string
	ActualPath    string
	ExpectedPath  string
	ActualDepth   int
	ExpectedDepth int
	Category      string
}

// SkippedFile is a file that could not be validated. The run continues without it.
type SkippedFile struct {
	File string
	Err  error
}

// Result collects one validation run.
type Result struct {
	Rule         string
	FilesScanned int
	// Correct counts relative imports that passed.
	Correct int
	// CorrectFiles lists files with at least one checked import and no mismatch.
	CorrectFiles []string
	Mismatches   []Mismatch
	Skipped      []SkippedFile
}

// Categories returns the mismatch categories in first-seen order.
func (r *Result) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range r.Mismatches {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out
}

// ByCategory returns the mismatches of one category in report order.
func (r *Result) ByCategory(category string) []Mismatch {
	var out []Mismatch
	for _, m := range r.Mismatches {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// Validator applies one Rule to every file under the scan root.
type Validator struct {
	opts    Options
	rule    Rule
	scanner *Scanner
}

// NewValidator builds a validator for rule.
func NewValidator(opts Options, rule Rule) *Validator {
	return &Validator{
		opts:    opts,
		rule:    rule,
		scanner: NewScanner(opts.ScanRoot, rule.Extensions(), opts.Ignore),
	}
}

// Run scans the tree and checks every relative import. Unreadable or
// non-UTF-8 files are recorded in Result.Skipped; only a missing scan root
// fails the run.
func (v *Validator) Run() (*Result, error) {
	log := logging.Get(logging.CategoryImports).With("rule", v.rule.Name())

	files, err := v.scanner.Files()
	if err != nil {
		return nil, err
	}

	res := &Result{Rule: v.rule.Name()}
	for _, file := range files {
		res.FilesScanned++

		content, err := textio.ReadFile(file)
		if err != nil {
			log.Warn("skipping %s: %v", file, err)
			res.Skipped = append(res.Skipped, SkippedFile{File: v.display(file), Err: err})
			continue
		}

		imports := v.rule.Extract(content)
		if len(imports) == 0 {
			continue
		}

		depth, err := ExpectedDepth(file, v.opts.DepthRoot)
		if err != nil {
			log.Warn("skipping %s: %v", file, err)
			res.Skipped = append(res.Skipped, SkippedFile{File: v.display(file), Err: err})
			continue
		}

		checked, failed := 0, 0
		for _, imp := range imports {
			if !imp.IsRelative() {
				continue
			}
			checked++
			verdict := v.rule.Check(imp, depth)
			if !verdict.Mismatch {
				res.Correct++
				continue
			}
			failed++
			log.Debug("%s: %s should be %s", file, imp.Path, verdict.ExpectedPath)
			res.Mismatches = append(res.Mismatches, Mismatch{
				File:          v.display(file),
				Statement:     imp.Statement,
				ActualPath:    imp.Path,
				ExpectedPath:  verdict.ExpectedPath,
				ActualDepth:   verdict.ActualDepth,
				ExpectedDepth: depth,
				Category:      verdict.Category,
			})
		}
		if checked > 0 && failed == 0 {
			res.CorrectFiles = append(res.CorrectFiles, v.display(file))
		}
	}

	log.Info("scanned %d files: %d correct, %d mismatches, %d skipped",
		res.FilesScanned, res.Correct, len(res.Mismatches), len(res.Skipped))
	return res, nil
}

// display shows file relative to the parent of the depth root, e.g. src/app/page.jsx.
func (v *Validator) display(file string) string {
	base := filepath.Dir(filepath.Clean(v.opts.DepthRoot))
	rel, err := filepath.Rel(base, file)
	if err != nil {
		return filepath.ToSlash(file)
	}
	return filepath.ToSlash(rel)
}
