package inventory

import (
	"context"

	"profile-sync/core/orchestrator"
	"profile-sync/core/resolver"

	"go.uber.org/zap"
)

// DocumentInfo summarizes one loaded inventory source.
type DocumentInfo struct {
	Name        string `json:"name"`
	Hosts       int    `json:"hosts"`
	Groups      int    `json:"groups"`
	HasDefaults bool   `json:"has_defaults"`
}

// Service handles inventory inspection.
type Service struct {
	runner *orchestrator.Runner
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(runner *orchestrator.Runner, logger *zap.Logger) *Service {
	return &Service{runner: runner, logger: logger}
}

// Documents loads the inventories and summarizes them.
func (s *Service) Documents(ctx context.Context) ([]DocumentInfo, error) {
	docs, err := s.runner.Documents(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DocumentInfo, 0, len(docs))
	for _, doc := range docs {
		out = append(out, DocumentInfo{
			Name:        doc.Name,
			Hosts:       doc.HostCount(),
			Groups:      len(doc.Groups),
			HasDefaults: doc.Defaults != nil,
		})
	}
	return out, nil
}

// Hosts loads the inventories and resolves every host.
func (s *Service) Hosts(ctx context.Context) ([]resolver.Resolved, error) {
	docs, err := s.runner.Documents(ctx)
	if err != nil {
		return nil, err
	}
	if err := orchestrator.CheckDocuments(docs); err != nil {
		return nil, err
	}
	return orchestrator.ResolveAll(docs)
}
