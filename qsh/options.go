package qsh

import (
	"time"

	"github.com/dvoshchepynets/qsh/internal/options"
	"github.com/dvoshchepynets/qsh/qshtime"
)

// Option configures a Parser at construction time.
type Option = options.Option[*parserConfig]

// parserConfig holds everything an Option can adjust before a Parser starts
// reading.
type parserConfig struct {
	presenter qshtime.Presenter
}

func newParserConfig() *parserConfig {
	return &parserConfig{presenter: qshtime.DefaultPresenter()}
}

// WithLocation overrides the wall-clock zone used to present the header's
// record_start_time and each Frame's Timestamp. The core always decodes in
// UTC internally; this changes only the zone those values are expressed in,
// not the instants they represent.
func WithLocation(loc *time.Location) Option {
	return options.NoError[*parserConfig](func(c *parserConfig) {
		c.presenter = qshtime.NewPresenter(loc)
	})
}
