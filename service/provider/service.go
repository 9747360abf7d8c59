package provider

import (
	"context"
	"fmt"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service"
	awsconfig "github.com/elC0mpa/tag-doctor/service/aws/config"
	awscostexplorer "github.com/elC0mpa/tag-doctor/service/aws/costexplorer"
	awsec2 "github.com/elC0mpa/tag-doctor/service/aws/ec2"
	awselb "github.com/elC0mpa/tag-doctor/service/aws/elb"
	awssts "github.com/elC0mpa/tag-doctor/service/aws/sts"
	azurecompute "github.com/elC0mpa/tag-doctor/service/azure/compute"
	azureconfig "github.com/elC0mpa/tag-doctor/service/azure/config"
	azurecost "github.com/elC0mpa/tag-doctor/service/azure/costmanagement"
	azureidentity "github.com/elC0mpa/tag-doctor/service/azure/identity"
	gcpcompute "github.com/elC0mpa/tag-doctor/service/gcp/compute"
	gcpconfig "github.com/elC0mpa/tag-doctor/service/gcp/config"
	gcpidentity "github.com/elC0mpa/tag-doctor/service/gcp/identity"
	"github.com/elC0mpa/tag-doctor/service/inventory"
	"github.com/elC0mpa/tag-doctor/service/synthetic"
	"github.com/rs/zerolog"
)

func NewService() *providerService {
	return &providerService{}
}

// SourceNames expands a --source value into the inventory sources it covers
func SourceNames(source string) []string {
	if source == SourceAll {
		return []string{model.ProviderAzure, model.ProviderAWS, model.ProviderGCP}
	}
	return []string{source}
}

// GetInventory returns an aggregator over the sources selected by flags.Source.
// With "all", sources that cannot be configured are skipped with a warning.
func (p *providerService) GetInventory(ctx context.Context, flags model.Flags) (inventory.AggregatorService, error) {
	logger := zerolog.Ctx(ctx)

	names := SourceNames(flags.Source)
	sources := make([]inventory.Source, 0, len(names))
	for _, name := range names {
		lister, err := p.inventorySource(ctx, name, flags)
		if err != nil {
			if flags.Source != SourceAll {
				return nil, err
			}
			logger.Warn().Err(err).Str("source", name).Msg("skipping inventory source")
			continue
		}
		sources = append(sources, inventory.Source{Name: name, Service: lister})
	}

	if len(sources) == 0 {
		return nil, inventory.ErrNoSources
	}

	return inventory.NewService(sources...), nil
}

func (p *providerService) inventorySource(ctx context.Context, name string, flags model.Flags) (inventory.Lister, error) {
	switch name {
	case model.ProviderSynthetic:
		return synthetic.NewService(flags.Count, flags.Seed), nil

	case model.ProviderAzure:
		cfg, err := azureconfig.NewService(flags.Subscription)
		if err != nil {
			return nil, err
		}
		return azurecompute.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())

	case model.ProviderAWS:
		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, flags.Region, flags.Profile)
		if err != nil {
			return nil, err
		}
		return inventory.NewService(
			inventory.Source{Name: "ec2", Service: awsec2.NewService(awsCfg)},
			inventory.Source{Name: "elb", Service: awselb.NewService(awsCfg)},
		), nil

	case model.ProviderGCP:
		cfg, err := gcpconfig.NewService(flags.Project)
		if err != nil {
			return nil, err
		}
		creds, err := cfg.GetCredentials(ctx)
		if err != nil {
			return nil, err
		}
		return gcpcompute.NewService(ctx, cfg.GetProjectID(), creds)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

func (p *providerService) GetIdentity(ctx context.Context, flags model.Flags) (service.IdentityService, error) {
	switch flags.Provider {
	case model.ProviderAzure:
		cfg, err := azureconfig.NewService(flags.Subscription)
		if err != nil {
			return nil, err
		}
		return azureidentity.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())

	case model.ProviderAWS:
		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, flags.Region, flags.Profile)
		if err != nil {
			return nil, err
		}
		return awssts.NewService(awsCfg), nil

	case model.ProviderGCP:
		cfg, err := gcpconfig.NewService(flags.Project)
		if err != nil {
			return nil, err
		}
		creds, err := cfg.GetCredentials(ctx)
		if err != nil {
			return nil, err
		}
		return gcpidentity.NewService(ctx, cfg.GetProjectID(), creds)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, flags.Provider)
}

func (p *providerService) GetCostService(ctx context.Context, flags model.Flags) (service.CostService, error) {
	switch flags.Provider {
	case model.ProviderAzure:
		cfg, err := azureconfig.NewService(flags.Subscription)
		if err != nil {
			return nil, err
		}
		return azurecost.NewService(cfg.GetSubscriptionID(), cfg.GetCredential())

	case model.ProviderAWS:
		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, flags.Region, flags.Profile)
		if err != nil {
			return nil, err
		}
		return awscostexplorer.NewService(awsCfg, flags.CostTag), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, flags.Provider)
}
