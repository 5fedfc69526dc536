package field

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"
)

// DefaultInverseSteps is the number of divisions after which Inv stops the
// extended Euclidean iteration. Four steps are enough for the small elements
// used by the share layer of GF(2^8), but not for every element of every
// field. Use WithExactInverse when a correct inverse is needed for all
// non-zero elements.
const DefaultInverseSteps = 4

type config struct {
	inverseSteps int
	logger       *logging.ZapEventLogger
}

func defaultConfig() config {
	return config{
		inverseSteps: DefaultInverseSteps,
		logger:       log,
	}
}

// Option configures a Galois field during construction
type Option func(*config) error

// WithInverseSteps caps the number of divisions performed by Inv. A value of
// zero or less removes the cap so that the iteration runs until the
// remainder vanishes.
func WithInverseSteps(n int) Option {
	return func(c *config) error {
		if n < 0 {
			n = 0
		}
		c.inverseSteps = n
		return nil
	}
}

// WithExactInverse removes the step cap from Inv
func WithExactInverse() Option {
	return WithInverseSteps(0)
}

// WithLogger routes the field's diagnostics to the named logging subsystem
func WithLogger(name string) Option {
	return func(c *config) error {
		if name == "" {
			return fmt.Errorf("%w: empty logger name", ErrInvalidOption)
		}
		c.logger = logging.Logger(name)
		return nil
	}
}
