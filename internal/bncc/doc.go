// Package bncc converts the BNCC curriculum document (docs/BNCC.md) into the
// JavaScript data module consumed by the sala-professor front end.
//
// The pipeline is Extract → Classify → Tree.Add → Render. Every stage is a pure
// function over text or in-memory values; only Convert and the Watcher touch disk.
package bncc
