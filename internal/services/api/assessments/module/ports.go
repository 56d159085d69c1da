package module

import (
	"context"

	assessdom "meetsense/internal/services/api/assessments/domain"
	assesssvc "meetsense/internal/services/api/assessments/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAssessmentsPort adapts the assessments service to the domain port interface
type adaptAssessmentsPort struct{ svc assesssvc.Service }

// Create implements the domain ServicePort interface
func (a adaptAssessmentsPort) Create(ctx context.Context, in assessdom.AssessmentInput) (assessdom.Assessment, error) {
	return a.svc.Create(ctx, in)
}

// Preview implements the domain ServicePort interface
func (a adaptAssessmentsPort) Preview(ctx context.Context, in assessdom.AssessmentInput) (assessdom.Assessment, error) {
	return a.svc.Preview(ctx, in)
}

// Get implements the domain ServicePort interface
func (a adaptAssessmentsPort) Get(ctx context.Context, id string) (assessdom.Assessment, error) {
	return a.svc.Get(ctx, id)
}

// Search implements the domain ServicePort interface
func (a adaptAssessmentsPort) Search(ctx context.Context, in assessdom.SearchInput) ([]assessdom.Summary, error) {
	return a.svc.Search(ctx, in)
}

// Delete implements the domain ServicePort interface
func (a adaptAssessmentsPort) Delete(ctx context.Context, id string) error {
	return a.svc.Delete(ctx, id)
}
