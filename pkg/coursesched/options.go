// Package coursesched extracts course schedule records from spreadsheet workbooks.
package coursesched

import (
	"github.com/ukaji3/coursesched-go/pkg/coursesched/config"
	"github.com/ukaji3/coursesched-go/pkg/logx"
)

// Options configures extraction behavior.
type Options struct {
	// Config maps workbook columns to record fields.
	// If nil, config.Default() is used.
	Config *config.Config
	// Logger receives one line per accepted or rejected sheet and debug
	// lines per row. The zero value discards everything.
	Logger logx.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Config: config.Default(),
	}
}

func (o Options) config() *config.Config {
	if o.Config != nil {
		return o.Config
	}
	return config.Default()
}
