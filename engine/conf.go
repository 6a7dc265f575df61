package engine

import (
	"io"
	"os"

	"github.com/advanderveer/decayvote/chain"
	"github.com/advanderveer/decayvote/decay"
	"github.com/cockroachdb/apd"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

//Conf configures the engine
type Conf struct {
	//Logs will be written to the writer
	LogWriter io.Writer `validate:"required"`

	//Precision of the decimal context used to sum and compare weights
	Precision uint32 `validate:"gte=8,lte=100"`

	//Weighted evaluates the passing fraction over effective weights, when false
	//every vote counts as one.
	Weighted bool

	//Decay is used for proposals that don't bring their own decay model
	Decay decay.Model `validate:"required"`

	//Clock timestamps the blocks appended to the ledger
	Clock chain.Clock `validate:"required"`
}

//DefaultConf returns sensible defaults
func DefaultConf() *Conf {
	return &Conf{
		LogWriter: os.Stderr,
		Precision: 34,
		Weighted:  true,
		Decay:     decay.Exponential{Rate: 0.001},
		Clock:     chain.NewWallClock(),
	}
}

var validate = validator.New()

//Validate checks the configuration
func (c *Conf) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	return nil
}

//DecimalContext returns a decimal context with the configured precision
func (c *Conf) DecimalContext() *apd.Context {
	return apd.BaseContext.WithPrecision(c.Precision)
}
