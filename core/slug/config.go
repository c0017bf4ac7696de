package slug

// Config holds configuration for identifier derivation.
type Config struct {
	// Policy selects the keep alphabet (alphanumeric, alphabetic).
	Policy string `mapstructure:"policy" default:"alphanumeric"`
	// Separator replaces every character outside the keep alphabet.
	Separator string `mapstructure:"separator" default:"-"`
}

const (
	PolicyAlphanumeric = "alphanumeric"
	PolicyAlphabetic   = "alphabetic"
)

// IsValidPolicy checks if the configured policy is known.
func (c Config) IsValidPolicy() bool {
	switch c.Policy {
	case PolicyAlphanumeric, PolicyAlphabetic:
		return true
	default:
		return false
	}
}
