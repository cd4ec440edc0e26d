package domain

import "context"

// TranslatePort is the memoized translate operation other services consume
type TranslatePort interface {
	// Translate returns a cached, machine, or fallback result for cacheKey.
	// It never returns an error for upstream failure
	Translate(ctx context.Context, cacheKey string, p Payload) Result
}

// ServicePort is the full translator contract including the stored-post flow
type ServicePort interface {
	TranslatePort
	TranslatePost(ctx context.Context, in TranslatePostInput) (TranslatePostOutput, error)
}
