// Package imports checks that relative imports in a JavaScript source tree climb
// exactly as many directories as the importing file sits below the source root.
//
// A Validator walks the tree with a Scanner and applies one Rule to every file.
// ResourceRule covers the shared resource folders (hooks, context, components,
// services, utils); SymbolRule pins the import path of one hook.
//
// Relative imports that are not prefixed by a ../ run (./hooks/x) are out of
// scope and count as correct.
package imports
