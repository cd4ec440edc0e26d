package domain

import "context"

// Picker selects one element index out of n.
// Production uses a uniform random pick; tests substitute a scripted
// sequence so composition is deterministic
type Picker interface {
	Pick(n int) int
}

// GeneratePort is the draft generation operation exposed to transports
// and the scheduled worker
type GeneratePort interface {
	Generate(ctx context.Context) (GenerateResult, error)
}
