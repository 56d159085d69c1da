package domain

import "context"

// ServicePort defines the service contract for assessments
type ServicePort interface {
	Create(ctx context.Context, in AssessmentInput) (Assessment, error)
	Preview(ctx context.Context, in AssessmentInput) (Assessment, error)
	Get(ctx context.Context, id string) (Assessment, error)
	Search(ctx context.Context, in SearchInput) ([]Summary, error)
	Delete(ctx context.Context, id string) error
}
