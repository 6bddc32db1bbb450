package pickit

import (
	"strings"

	"github.com/gobeaver/beaver-kit/config"
)

// Config holds environment-driven validation defaults.
//
// The environment is a flat key space, so tri-state constraints are encoded
// here with zero/empty meaning "not configured": a zero limit or an empty
// format list leaves the corresponding Constraints field absent. The
// explicit tri-state lives on Constraints; Config is only the boundary
// mapping onto it.
type Config struct {
	// MaxFiles caps the batch size. 0 leaves the constraint absent.
	MaxFiles int `env:"PICKIT_MAX_FILES,default:0"`

	// MaxSize / MinSize are byte counts. 0 leaves the constraint absent.
	MaxSize int64 `env:"PICKIT_MAX_SIZE,default:0"`
	MinSize int64 `env:"PICKIT_MIN_SIZE,default:0"`

	// AcceptedFormats is a comma-separated pattern list, e.g.
	// "image/,.pdf,text/plain". Empty leaves the constraint absent.
	AcceptedFormats string `env:"PICKIT_ACCEPTED_FORMATS"`

	// Custom messages, overlaid on the default catalog when non-empty.
	MessageTooManyFiles string `env:"PICKIT_MSG_TOO_MANY_FILES"`
	MessageInvalidType  string `env:"PICKIT_MSG_INVALID_TYPE"`
	MessageTooLarge     string `env:"PICKIT_MSG_TOO_LARGE"`
	MessageTooSmall     string `env:"PICKIT_MSG_TOO_SMALL"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Constraints maps the config onto a constraint set, leaving unset fields
// absent rather than zero.
func (c *Config) Constraints() Constraints {
	var cs Constraints
	if c.MaxFiles > 0 {
		cs.MaxFiles = Count(c.MaxFiles)
	}
	if c.MaxSize > 0 {
		cs.MaxSize = Size(c.MaxSize)
	}
	if c.MinSize > 0 {
		cs.MinSize = Size(c.MinSize)
	}
	if c.AcceptedFormats != "" {
		parts := strings.Split(c.AcceptedFormats, ",")
		formats := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				formats = append(formats, p)
			}
		}
		cs.AcceptedFormats = formats
	}
	return cs
}

// Catalog returns the default catalog with any configured message
// overrides applied.
func (c *Config) Catalog() Catalog {
	cat := DefaultCatalog()
	if c.MessageTooManyFiles != "" {
		cat[CodeTooManyFiles] = c.MessageTooManyFiles
	}
	if c.MessageInvalidType != "" {
		cat[CodeInvalidType] = c.MessageInvalidType
	}
	if c.MessageTooLarge != "" {
		cat[CodeTooLarge] = c.MessageTooLarge
	}
	if c.MessageTooSmall != "" {
		cat[CodeTooSmall] = c.MessageTooSmall
	}
	return cat
}

// NewFromEnv creates a validator configured entirely from the environment.
func NewFromEnv() (*BatchValidator, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg.Constraints(), cfg.Catalog()), nil
}
