package form

import (
	"fmt"

	"github.com/shashibeit/ui-theme-material/pkg/config"
)

// Policy controls when a Session validates without being asked.
type Policy struct {
	ValidateOnChange bool `env:"FORM_VALIDATE_ON_CHANGE" envDefault:"true"`
	ValidateOnBlur   bool `env:"FORM_VALIDATE_ON_BLUR" envDefault:"true"`
	ValidateOnMount  bool `env:"FORM_VALIDATE_ON_MOUNT" envDefault:"false"`
}

// DefaultPolicy validates on change and blur but not on mount.
func DefaultPolicy() Policy {
	return Policy{ValidateOnChange: true, ValidateOnBlur: true}
}

// LoadPolicy reads the policy from the environment.
func LoadPolicy(opts ...config.Option) (Policy, error) {
	var p Policy
	if err := config.Load(&p, opts...); err != nil {
		return Policy{}, fmt.Errorf("form: load policy: %w", err)
	}
	return p, nil
}
