package domainfx

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/yurykabanov/logarchiver/pkg/domain"
	"github.com/yurykabanov/logarchiver/pkg/paths"
)

const (
	ConfigOutputDir  = "out"
	ConfigRetainDays = "retain"
)

// JobProvider builds the invocation's Job from the command line: it takes
// the required source directory positional, resolves and creates the working
// directories, and captures the invocation timestamp. Everything downstream
// receives canonical paths only.
func JobProvider(flagSet *pflag.FlagSet, v *viper.Viper, resolver *paths.Resolver) (domain.Job, error) {
	args := flagSet.Args()
	if len(args) != 1 {
		flagSet.Usage()
		return domain.Job{}, errors.Wrap(domain.ErrUsage, "expected exactly one log directory argument")
	}

	retainDays := -1
	if flagSet.Changed(ConfigRetainDays) {
		retainDays = v.GetInt(ConfigRetainDays)
		if retainDays < 0 {
			flagSet.Usage()
			return domain.Job{}, errors.Wrapf(domain.ErrUsage, "--retain must be non-negative, got %d", retainDays)
		}
	}

	resolved, err := resolver.Resolve(args[0], v.GetString(ConfigOutputDir))
	if err != nil {
		return domain.Job{}, err
	}

	return domain.Job{
		SourceDir:  resolved.SourceDir,
		OutputDir:  resolved.OutputDir,
		Timestamp:  time.Now().Format(domain.TimestampLayout),
		RetainDays: retainDays,
	}, nil
}
