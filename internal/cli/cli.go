/*
Package cli bundles configuration and tracing setup shared by the commands
of this module.

Configuration is layered: defaults, an optional NestedText file found at the
standard locations for application tag "snarkmr", then command line flags
explicitly set by the user.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package cli

import (
	"flag"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// AppTag identifies configuration files of the commands.
const AppTag = "snarkmr"

// TraceKey is the configuration key holding the trace level of the module's
// tracer.
const TraceKey = "trace.snarkmr"

// LoadConfig creates the configuration for a command. Flags of fs which have
// been set on the command line override values from configuration files.
// fs has to be parsed.
func LoadConfig(fs *flag.FlagSet) *koanfadapter.KConf {
	conf := koanfadapter.New(nil, AppTag, []string{"nt"})
	conf.InitDefaults()
	fs.Visit(func(f *flag.Flag) {
		if g, ok := f.Value.(flag.Getter); ok {
			conf.Set(f.Name, g.Get())
		} else {
			conf.Set(f.Name, f.Value.String())
		}
	})
	return conf
}

// ConfigureTracing installs Go-log based tracers configured from conf. A
// non-empty level overrides the configured trace level.
func ConfigureTracing(conf *koanfadapter.KConf, level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if level != "" {
		conf.Set("trace.root", level)
		conf.Set(TraceKey, level)
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Select(AppTag).Debugf("tracing configured with level %s", conf.GetString(TraceKey))
	return nil
}

// Uint returns a configuration value as an unsigned integer, or dflt if the
// key is unset or negative.
func Uint(conf *koanfadapter.KConf, key string, dflt uint64) uint64 {
	if !conf.IsSet(key) {
		return dflt
	}
	if v := conf.GetInt(key); v >= 0 {
		return uint64(v)
	}
	return dflt
}
