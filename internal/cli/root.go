package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/matzehuels/erdgraph/pkg/errors"
	"github.com/matzehuels/erdgraph/pkg/pipeline"
)

// layoutFlags holds the layout settings a command accepts on the command
// line. Only flags the user actually set override the config file.
type layoutFlags struct {
	originX, originY float64
	rowHeight        float64
	recordWidth      float64
	recordSpace      float64
	cornerRadius     float64
	noJunctions      bool
}

func (f *layoutFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.originX, "origin-x", 0, "left margin (default 50)")
	fs.Float64Var(&f.originY, "origin-y", 0, "top margin (default 80)")
	fs.Float64Var(&f.rowHeight, "row-height", 0, "height of one column row (default 35)")
	fs.Float64Var(&f.recordWidth, "record-width", 0, "table width (default 300)")
	fs.Float64Var(&f.recordSpace, "record-space", 0, "gap between tables (default 80)")
	fs.Float64Var(&f.cornerRadius, "corner-radius", 0, "connector corner radius (default 6)")
	fs.BoolVar(&f.noJunctions, "no-junctions", false, "skip junction mapping")
}

// apply copies every changed flag into opts.
func (f *layoutFlags) apply(fs *pflag.FlagSet, opts *pipeline.Options) {
	floats := []struct {
		name string
		src  float64
		dst  *float64
	}{
		{"origin-x", f.originX, &opts.Layout.OriginX},
		{"origin-y", f.originY, &opts.Layout.OriginY},
		{"row-height", f.rowHeight, &opts.Layout.RowHeight},
		{"record-width", f.recordWidth, &opts.Layout.RecordWidth},
		{"record-space", f.recordSpace, &opts.Layout.RecordSpace},
		{"corner-radius", f.cornerRadius, &opts.Layout.CornerRadius},
	}
	for _, fl := range floats {
		if fs.Changed(fl.name) {
			*fl.dst = fl.src
		}
	}
	if fs.Changed("no-junctions") {
		opts.SkipJunctions = f.noJunctions
	}
}

// loadOptions reads pipeline options from the TOML file at path. An empty
// path yields zero options, which SetDefaults fills later.
//
//	skip_junctions = false
//
//	[layout]
//	row_height   = 30
//	record_width = 260
func loadOptions(path string) (pipeline.Options, error) {
	var opts pipeline.Options
	if path == "" {
		return opts, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return opts, err
	}
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return opts, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return opts, nil
}

// resolveOptions merges the config file and the command-line flags.
func (c *CLI) resolveOptions(fs *pflag.FlagSet, flags *layoutFlags) (pipeline.Options, error) {
	opts, err := loadOptions(c.configPath)
	if err != nil {
		return opts, err
	}
	flags.apply(fs, &opts)
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}
