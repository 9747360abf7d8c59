package gcpconfig

import (
	"context"
	"errors"

	"golang.org/x/oauth2/google"
)

var ErrNoProject = errors.New("gcp project id is required (--project or TAGDOCTOR_PROJECT)")

type service struct {
	projectID string
}

type ConfigService interface {
	GetCredentials(ctx context.Context) (*google.Credentials, error)
	GetProjectID() string
}
