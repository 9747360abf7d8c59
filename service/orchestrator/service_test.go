package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/elC0mpa/tag-doctor/cmd/mcp/response"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service"
	"github.com/elC0mpa/tag-doctor/service/inventory"
	"github.com/elC0mpa/tag-doctor/service/policy"
	"github.com/elC0mpa/tag-doctor/service/synthetic"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProviderService struct {
	mock.Mock
}

func (m *mockProviderService) GetInventory(ctx context.Context, flags model.Flags) (inventory.AggregatorService, error) {
	args := m.Called(ctx, flags)
	agg, _ := args.Get(0).(inventory.AggregatorService)
	return agg, args.Error(1)
}

func (m *mockProviderService) GetIdentity(ctx context.Context, flags model.Flags) (service.IdentityService, error) {
	args := m.Called(ctx, flags)
	id, _ := args.Get(0).(service.IdentityService)
	return id, args.Error(1)
}

func (m *mockProviderService) GetCostService(ctx context.Context, flags model.Flags) (service.CostService, error) {
	args := m.Called(ctx, flags)
	cs, _ := args.Get(0).(service.CostService)
	return cs, args.Error(1)
}

type stubIdentity struct {
	account model.AccountInfo
}

func (s stubIdentity) GetAccountInfo(context.Context) (*model.AccountInfo, error) {
	return &s.account, nil
}

type stubCosts struct {
	current *model.CostInfo
	trend   []model.CostInfo
}

func (s stubCosts) GetCurrentMonthCostsByGroup(context.Context) (*model.CostInfo, error) {
	return s.current, nil
}

func (s stubCosts) GetLastSixMonthsCosts(context.Context) ([]model.CostInfo, error) {
	return s.trend, nil
}

func testContext() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func newTestOrchestrator(p *mockProviderService) (*orchestratorService, *bytes.Buffer) {
	var out bytes.Buffer
	return NewService(p, policy.NewService(viper.New()), &out), &out
}

func syntheticInventory(count int) inventory.AggregatorService {
	return inventory.NewService(inventory.Source{Name: model.ProviderSynthetic, Service: synthetic.NewService(count, 7)})
}

func TestOrchestrate_AuditTable(t *testing.T) {
	flags := model.Flags{Workflow: model.WorkflowAudit, Source: model.ProviderSynthetic, Count: 12, Seed: 7}
	p := &mockProviderService{}
	p.On("GetInventory", mock.Anything, flags).Return(syntheticInventory(12), nil)

	o, out := newTestOrchestrator(p)
	require.NoError(t, o.Orchestrate(testContext(), flags))

	assert.Contains(t, out.String(), "TAG COMPLIANCE AUDIT")
	assert.Contains(t, out.String(), "Overall Compliance")
	p.AssertExpectations(t)
	p.AssertNotCalled(t, "GetIdentity", mock.Anything, mock.Anything)
}

func TestOrchestrate_AuditJSON(t *testing.T) {
	flags := model.Flags{Workflow: model.WorkflowAudit, Source: model.ProviderSynthetic, Count: 9, Seed: 7, JSON: true}
	p := &mockProviderService{}
	p.On("GetInventory", mock.Anything, flags).Return(syntheticInventory(9), nil)

	o, out := newTestOrchestrator(p)
	require.NoError(t, o.Orchestrate(testContext(), flags))

	raw := out.String()
	assert.Contains(t, raw, `"compliance_rate"`)
	assert.Contains(t, raw, `"non_compliant"`)
	assert.NotContains(t, raw, `"ComplianceRate"`)
	assert.NotContains(t, raw, `"Details"`)

	var report response.AuditReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, model.ProviderSynthetic, report.Source)
	assert.Equal(t, 9, report.Summary.Total)
	assert.Len(t, report.NonCompliant, report.Summary.NonCompliant)
}

func TestOrchestrate_AuditLogsLiveAccount(t *testing.T) {
	flags := model.Flags{Workflow: model.WorkflowAudit, Source: model.ProviderAzure}
	identityFlags := flags
	identityFlags.Provider = model.ProviderAzure

	p := &mockProviderService{}
	p.On("GetInventory", mock.Anything, flags).Return(syntheticInventory(3), nil)
	p.On("GetIdentity", mock.Anything, identityFlags).Return(stubIdentity{account: model.AccountInfo{Provider: "azure", AccountID: "sub-1"}}, nil)

	o, _ := newTestOrchestrator(p)
	require.NoError(t, o.Orchestrate(testContext(), flags))
	p.AssertExpectations(t)
}

func TestOrchestrate_AuditInventoryError(t *testing.T) {
	flags := model.Flags{Workflow: model.WorkflowAudit, Source: model.ProviderGCP}
	p := &mockProviderService{}
	p.On("GetInventory", mock.Anything, flags).Return(nil, inventory.ErrNoSources)

	o, _ := newTestOrchestrator(p)
	err := o.Orchestrate(testContext(), flags)
	assert.ErrorIs(t, err, inventory.ErrNoSources)
}

func TestOrchestrate_Costs(t *testing.T) {
	dir := t.TempDir()
	flags := model.Flags{
		Workflow: model.WorkflowCosts,
		Hours:    730,
		CSVPath:  filepath.Join(dir, "inventory.csv"),
		PNGPath:  filepath.Join(dir, "analysis.png"),
	}

	o, out := newTestOrchestrator(&mockProviderService{})
	require.NoError(t, o.Orchestrate(testContext(), flags))

	assert.Contains(t, out.String(), "Resource Inventory")
	assert.Contains(t, out.String(), "Optimised Inventory")
	assert.Contains(t, out.String(), "vm-web-prod-01")

	csv, err := os.ReadFile(flags.CSVPath)
	require.NoError(t, err)
	assert.Contains(t, string(csv), "stprodbackup001")

	info, err := os.Stat(flags.PNGPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestOrchestrate_CostsSkipsExports(t *testing.T) {
	flags := model.Flags{Workflow: model.WorkflowCosts, Hours: 730}

	o, out := newTestOrchestrator(&mockProviderService{})
	require.NoError(t, o.Orchestrate(testContext(), flags))
	assert.NotEmpty(t, out.String())
}

func TestOrchestrate_ActualByGroup(t *testing.T) {
	flags := model.Flags{Workflow: model.WorkflowActual, Provider: model.ProviderAzure}
	start, end := "2026-10-01", "2026-10-16"
	costs := stubCosts{current: &model.CostInfo{
		DateInterval: model.DateInterval{Start: &start, End: &end},
		CostGroup:    model.CostGroup{"rg-production": {Amount: 120.5, Unit: "USD"}},
	}}

	p := &mockProviderService{}
	p.On("GetCostService", mock.Anything, flags).Return(costs, nil)
	p.On("GetIdentity", mock.Anything, flags).Return(stubIdentity{account: model.AccountInfo{AccountName: "Contoso"}}, nil)

	o, out := newTestOrchestrator(p)
	require.NoError(t, o.Orchestrate(testContext(), flags))

	assert.Contains(t, out.String(), "rg-production")
	assert.Contains(t, out.String(), "120.50 USD")
}

func TestOrchestrate_ActualTrend(t *testing.T) {
	flags := model.Flags{Workflow: model.WorkflowActual, Provider: model.ProviderAWS, CostTag: "Environment", Trend: true}
	start, end := "2026-09-01", "2026-10-01"
	costs := stubCosts{trend: []model.CostInfo{{
		DateInterval: model.DateInterval{Start: &start, End: &end},
		CostGroup:    model.CostGroup{"Total": {Amount: 42, Unit: "USD"}},
	}}}

	p := &mockProviderService{}
	p.On("GetCostService", mock.Anything, flags).Return(costs, nil)
	p.On("GetIdentity", mock.Anything, flags).Return(stubIdentity{account: model.AccountInfo{AccountID: "123456789012"}}, nil)

	o, out := newTestOrchestrator(p)
	require.NoError(t, o.Orchestrate(testContext(), flags))
	assert.NotEmpty(t, out.String())
}

func TestOrchestrate_ActualCostServiceError(t *testing.T) {
	flags := model.Flags{Workflow: model.WorkflowActual, Provider: model.ProviderAzure}
	boom := errors.New("no subscription")

	p := &mockProviderService{}
	p.On("GetCostService", mock.Anything, flags).Return(nil, boom)

	o, _ := newTestOrchestrator(p)
	assert.ErrorIs(t, o.Orchestrate(testContext(), flags), boom)
}

func TestOrchestrate_Policy(t *testing.T) {
	o, out := newTestOrchestrator(&mockProviderService{})
	require.NoError(t, o.Orchestrate(testContext(), model.Flags{Workflow: model.WorkflowPolicy}))

	assert.Contains(t, out.String(), "required_tags:")
	assert.Contains(t, out.String(), "CostCenter")
}

func TestOrchestrate_UnknownWorkflow(t *testing.T) {
	o, _ := newTestOrchestrator(&mockProviderService{})
	assert.Error(t, o.Orchestrate(testContext(), model.Flags{Workflow: "waste"}))
}

func TestGroupLabel(t *testing.T) {
	assert.Equal(t, "Resource Group", groupLabel(model.Flags{Provider: model.ProviderAzure}))
	assert.Equal(t, "Tag: Team", groupLabel(model.Flags{Provider: model.ProviderAWS, CostTag: "Team"}))
}
