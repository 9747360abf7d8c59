package gcpconfig

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/compute/v1"
)

func NewService(projectID string) (*service, error) {
	if projectID == "" {
		return nil, ErrNoProject
	}
	return &service{
		projectID: projectID,
	}, nil
}

// GetCredentials uses Application Default Credentials
// (GOOGLE_APPLICATION_CREDENTIALS, gcloud auth application-default login, or
// the metadata server)
func (s *service) GetCredentials(ctx context.Context) (*google.Credentials, error) {
	creds, err := google.FindDefaultCredentials(ctx,
		cloudresourcemanager.CloudPlatformReadOnlyScope,
		compute.ComputeReadonlyScope,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find GCP credentials: %w", err)
	}
	return creds, nil
}

func (s *service) GetProjectID() string {
	return s.projectID
}
