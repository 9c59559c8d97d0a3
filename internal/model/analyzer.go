package model

import "context"

// Analyzer wraps the external generative-language provider behind a single
// operation: given free claim text, return a generated markdown explanation.
type Analyzer interface {
	Analyze(ctx context.Context, claim string) (string, error)
}
