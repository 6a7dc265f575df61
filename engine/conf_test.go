package engine_test

import (
	"testing"
	"time"

	"github.com/advanderveer/decayvote/decay"
	"github.com/advanderveer/decayvote/engine"
	"github.com/advanderveer/go-test"
)

func TestConfValidation(t *testing.T) {
	test.Ok(t, engine.DefaultConf().Validate())

	conf := engine.DefaultConf()
	conf.Precision = 2
	test.Assert(t, conf.Validate() != nil, "precision too low should not validate")

	conf = engine.DefaultConf()
	conf.LogWriter = nil
	_, err := engine.New(conf)
	test.Assert(t, err != nil, "engine without log writer should not be created")

	conf = engine.DefaultConf()
	conf.Decay = nil
	test.Assert(t, conf.Validate() != nil, "conf without decay model should not validate")
}

func TestDecodeSettings(t *testing.T) {
	s, err := engine.DecodeSettings(map[string]interface{}{
		"precision": 50,
		"weighted":  false,
		"decay": map[string]interface{}{
			"model":    "stepped",
			"interval": "30s",
			"factor":   0.1,
		},
	})
	test.Ok(t, err)

	conf := engine.DefaultConf()
	test.Ok(t, s.Apply(conf))
	test.Equals(t, uint32(50), conf.Precision)
	test.Equals(t, false, conf.Weighted)
	test.Equals(t, decay.Stepped{Interval: 30 * time.Second, Factor: 0.1}, conf.Decay)

	t.Run("partial settings keep defaults", func(t *testing.T) {
		s, err := engine.DecodeSettings(map[string]interface{}{"decay": map[string]interface{}{"model": "linear", "rate": 0.01}})
		test.Ok(t, err)

		conf := engine.DefaultConf()
		test.Ok(t, s.Apply(conf))
		test.Equals(t, uint32(34), conf.Precision)
		test.Equals(t, true, conf.Weighted)
		test.Equals(t, decay.Linear{Rate: 0.01}, conf.Decay)
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := engine.DecodeSettings(map[string]interface{}{"decay": map[string]interface{}{"model": "quadratic"}})
		test.Assert(t, err != nil, "unknown decay model should fail")
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := engine.DecodeSettings(map[string]interface{}{"precission": 10})
		test.Assert(t, err != nil, "unknown key should fail")
	})

	t.Run("invalid precision after apply", func(t *testing.T) {
		s, err := engine.DecodeSettings(map[string]interface{}{"precision": 1000})
		test.Ok(t, err)
		test.Assert(t, s.Apply(engine.DefaultConf()) != nil, "out of range precision should fail validation")
	})
}
