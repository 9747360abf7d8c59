package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elC0mpa/tag-doctor/cmd/mcp/response"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service/compliance"
	"github.com/elC0mpa/tag-doctor/service/costmodel"
	"github.com/elC0mpa/tag-doctor/service/policy"
	"github.com/elC0mpa/tag-doctor/service/provider"
	"github.com/elC0mpa/tag-doctor/utils"
	"github.com/rs/zerolog"
)

func NewService(providerService provider.ProviderService, policyService policy.PolicyService, out io.Writer) *orchestratorService {
	return &orchestratorService{
		providerService: providerService,
		policyService:   policyService,
		out:             out,
	}
}

func (s *orchestratorService) Orchestrate(ctx context.Context, flags model.Flags) error {
	switch flags.Workflow {
	case model.WorkflowAudit:
		return s.auditWorkflow(ctx, flags)
	case model.WorkflowCosts:
		return s.costsWorkflow(ctx, flags)
	case model.WorkflowActual:
		return s.actualWorkflow(ctx, flags)
	case model.WorkflowPolicy:
		return s.policyWorkflow()
	}

	return fmt.Errorf("unknown workflow %q", flags.Workflow)
}

func (s *orchestratorService) auditWorkflow(ctx context.Context, flags model.Flags) error {
	logger := zerolog.Ctx(ctx)

	p, err := s.policyService.GetPolicy()
	if err != nil {
		return err
	}

	inventoryService, err := s.providerService.GetInventory(ctx, flags)
	if err != nil {
		return err
	}

	resources, err := inventoryService.ListResources(ctx)
	if err != nil {
		return err
	}

	s.logAccount(ctx, flags)

	report := compliance.NewService(p).Audit(resources)
	logger.Info().
		Int("resources", report.Summary.Total).
		Float64("compliance_rate", report.Summary.ComplianceRate).
		Msg("audit complete")

	utils.StopSpinner()

	// same shape as the tags_audit MCP tool
	if flags.JSON {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(response.ConvertAuditReport(flags.Source, report)); err != nil {
			return fmt.Errorf("failed to encode audit report: %w", err)
		}
		return nil
	}

	if flags.Source == provider.SourceAll {
		utils.DrawSourceStatus(s.out, inventoryService.Sources(), resources)
	}
	utils.DrawAuditReport(s.out, flags.Source, report)

	return nil
}

// logAccount records which account a single live source was read from
func (s *orchestratorService) logAccount(ctx context.Context, flags model.Flags) {
	if flags.Source == model.ProviderSynthetic || flags.Source == provider.SourceAll {
		return
	}

	logger := zerolog.Ctx(ctx)

	identityFlags := flags
	identityFlags.Provider = flags.Source
	identityService, err := s.providerService.GetIdentity(ctx, identityFlags)
	if err != nil {
		logger.Warn().Err(err).Msg("could not resolve account identity")
		return
	}

	account, err := identityService.GetAccountInfo(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("could not resolve account identity")
		return
	}

	logger.Info().Str("provider", account.Provider).Str("account", account.AccountID).Str("name", account.AccountName).Msg("audited account")
}

func (s *orchestratorService) costsWorkflow(ctx context.Context, flags model.Flags) error {
	logger := zerolog.Ctx(ctx)

	lab, err := costmodel.NewLab()
	if err != nil {
		return err
	}

	before := costmodel.BuildInventory(lab.Groups(), flags.Hours)
	comparison := model.CostComparison{Before: lab.TotalCost(flags.Hours)}

	utils.DrawInventoryTable(s.out, "Resource Inventory", before)
	byType := costmodel.SummarizeByType(before)
	utils.DrawCostSummaryTable(s.out, "Cost by Resource Type", "Type", byType)
	utils.DrawCostSummaryTable(s.out, "Cost by Resource Group", "Resource Group", costmodel.SummarizeByGroup(before))
	utils.DrawCostByTypeChart(s.out, byType)

	steps := lab.Optimize(flags.Hours)
	for _, step := range steps {
		if step.Err != nil {
			logger.Warn().Err(step.Err).Int("phase", step.Phase).Str("resource", step.Resource).Msg("optimisation step failed")
		}
	}
	utils.DrawOptimizationSteps(s.out, steps)

	after := costmodel.BuildInventory(lab.Groups(), flags.Hours)
	comparison.After = lab.TotalCost(flags.Hours)
	utils.DrawInventoryTable(s.out, "Optimised Inventory", after)
	utils.DrawCostComparison(s.out, comparison)

	if flags.CSVPath != "" {
		if err := utils.ExportInventoryCSV(flags.CSVPath, after); err != nil {
			return err
		}
		logger.Info().Str("path", flags.CSVPath).Int("rows", len(after)).Msg("exported inventory")
	}

	if flags.PNGPath != "" {
		if err := utils.ExportAnalysisPNG(flags.PNGPath, after); err != nil {
			return err
		}
		logger.Info().Str("path", flags.PNGPath).Msg("exported analysis chart")
	}

	return nil
}

func (s *orchestratorService) actualWorkflow(ctx context.Context, flags model.Flags) error {
	costService, err := s.providerService.GetCostService(ctx, flags)
	if err != nil {
		return err
	}

	identityService, err := s.providerService.GetIdentity(ctx, flags)
	if err != nil {
		return err
	}

	account, err := identityService.GetAccountInfo(ctx)
	if err != nil {
		return err
	}

	if flags.Trend {
		monthlyCosts, err := costService.GetLastSixMonthsCosts(ctx)
		if err != nil {
			return err
		}

		utils.StopSpinner()
		utils.DrawTrendChart(s.out, *account, monthlyCosts)
		return nil
	}

	costInfo, err := costService.GetCurrentMonthCostsByGroup(ctx)
	if err != nil {
		return err
	}

	utils.StopSpinner()
	utils.DrawGroupCostTable(s.out, *account, groupLabel(flags), costInfo)

	return nil
}

func (s *orchestratorService) policyWorkflow() error {
	p, err := s.policyService.GetPolicy()
	if err != nil {
		return err
	}

	return s.policyService.WritePolicy(s.out, p)
}

func groupLabel(flags model.Flags) string {
	if flags.Provider == model.ProviderAWS {
		return "Tag: " + flags.CostTag
	}
	return "Resource Group"
}
