package policy

import (
	"errors"
	"io"

	"github.com/elC0mpa/tag-doctor/model"
	"github.com/spf13/viper"
)

// ErrInvalidPolicy is returned when a loaded policy fails validation
var ErrInvalidPolicy = errors.New("invalid tagging policy")

type service struct {
	v *viper.Viper
}

type PolicyService interface {
	GetPolicy() (model.Policy, error)
	WritePolicy(w io.Writer, p model.Policy) error
}

// document is the on-disk shape of the config file, restricted to the policy section
type document struct {
	Policy *model.Policy `yaml:"policy"`
}
