// Package orchestrator wires the form loader → transformer → widget registry →
// renderer pipeline behind a single entry point.
package orchestrator
