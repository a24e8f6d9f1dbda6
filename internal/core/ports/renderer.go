package ports

import "go.trai.ch/lockdiff/internal/core/domain"

// ReportRenderer renders a comparison report for the user. The renderer
// consumes the report read-only; exit-code mapping happens at the CLI
// boundary, not here.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ReportRenderer interface {
	Render(report domain.Report) error
}
