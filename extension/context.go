// context.go defines the Context interface for extension access to shared
// runtime state.
//
// Extensions receive Context during Init(), not at construction, because
// extensions register before flags are parsed and the effective
// configuration is known.

package extension

import (
	"github.com/openticketai/sitekit/internal/config"
	"github.com/openticketai/sitekit/internal/locale"
)

// Context provides extensions controlled access to the resolved
// configuration.
type Context interface {
	// Config returns the effective configuration: file, environment and
	// global flags applied.
	Config() *config.Config

	// Locales returns the validated locale set built from Config.
	Locales() locale.Set
}

// extContext implements Context.
type extContext struct {
	cfg *config.Config
	set locale.Set
}

// NewContext creates a new extension context. The configuration must
// already be validated.
func NewContext(cfg *config.Config) (Context, error) {
	set, err := cfg.LocaleSet()
	if err != nil {
		return nil, err
	}
	return &extContext{cfg: cfg, set: set}, nil
}

func (c *extContext) Config() *config.Config { return c.cfg }

func (c *extContext) Locales() locale.Set { return c.set }
