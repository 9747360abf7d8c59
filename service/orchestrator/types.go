package orchestrator

import (
	"context"
	"io"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service/policy"
	"github.com/elC0mpa/tag-doctor/service/provider"
)

type orchestratorService struct {
	providerService provider.ProviderService
	policyService   policy.PolicyService
	out             io.Writer
}

type OrchestratorService interface {
	Orchestrate(ctx context.Context, flags model.Flags) error
}
