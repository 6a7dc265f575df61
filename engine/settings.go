package engine

import (
	"time"

	"github.com/advanderveer/decayvote/decay"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

//Settings is the loosely typed form of the configuration, as it would be read
//from a JSON or YAML document. Absent fields leave the Conf untouched.
type Settings struct {
	Precision *uint32        `mapstructure:"precision"`
	Weighted  *bool          `mapstructure:"weighted"`
	Decay     *DecaySettings `mapstructure:"decay"`
}

//DecaySettings selects and parameterizes a decay model
type DecaySettings struct {
	Model    string        `mapstructure:"model" validate:"oneof=linear exponential stepped"`
	Rate     float64       `mapstructure:"rate"`
	Interval time.Duration `mapstructure:"interval"`
	Factor   float64       `mapstructure:"factor"`
}

//DecodeSettings decodes raw settings, durations may be given as strings like "30s"
func DecodeSettings(raw map[string]interface{}) (s *Settings, err error) {
	s = &Settings{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      s,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to setup settings decoder")
	}

	if err = dec.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}

	if s.Decay != nil {
		if err = validate.Struct(s.Decay); err != nil {
			return nil, errors.Wrap(err, "invalid decay settings")
		}
	}

	return
}

//DecayModel returns the decay model the settings describe
func (ds *DecaySettings) DecayModel() decay.Model {
	switch ds.Model {
	case "linear":
		return decay.Linear{Rate: ds.Rate}
	case "stepped":
		return decay.Stepped{Interval: ds.Interval, Factor: ds.Factor}
	default:
		return decay.Exponential{Rate: ds.Rate}
	}
}

//Apply the settings onto conf and validate the result
func (s *Settings) Apply(conf *Conf) error {
	if s.Precision != nil {
		conf.Precision = *s.Precision
	}

	if s.Weighted != nil {
		conf.Weighted = *s.Weighted
	}

	if s.Decay != nil {
		conf.Decay = s.Decay.DecayModel()
	}

	return conf.Validate()
}
