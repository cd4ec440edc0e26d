package domain

import "context"

// ServicePort is the leads surface exposed to transports
type ServicePort interface {
	// Submit validates, persists and acknowledges one lead
	Submit(ctx context.Context, in LeadInput) (SubmitOutput, error)
	// Export returns every stored lead joined with its consent version
	Export(ctx context.Context) ([]ExportRow, error)
}

// Notifier is told about stored leads, delivery is best effort
type Notifier interface {
	LeadSubmitted(ctx context.Context, leadID string, in LeadInput)
}
