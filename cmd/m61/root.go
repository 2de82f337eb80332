package main

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	keyLogLevel = "log-level"
	keyDigits   = "digits"
	keyWorkers  = "workers"
	keyChunk    = "chunk"
	keyRounds   = "rounds"
	keyOut      = "out"
	keySeed     = "seed"
)

type app struct {
	v   *viper.Viper
	log *zap.Logger
}

// newRootCmd builds the command tree. A nil logger is replaced by one built
// from the log-level setting before any subcommand runs.
func newRootCmd(log *zap.Logger) *cobra.Command {
	a := &app{v: viper.New(), log: log}
	a.v.SetEnvPrefix("M61")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "m61",
		Short:        "Arithmetic modulo the Mersenne prime 2^61-1",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if a.log != nil {
				return nil
			}
			l, err := newLogger(a.v.GetString(keyLogLevel))
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().String(keyLogLevel, "info", "log level (debug, info, warn, error)")
	mustBind(a.v, keyLogLevel, root.PersistentFlags().Lookup(keyLogLevel))

	root.AddCommand(
		a.reduceCmd(),
		a.powCmd(),
		a.invCmd(),
		a.benchCmd(),
	)
	return root
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return l.Named("m61"), nil
}

func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// parseInt parses a decimal, 0x hex, 0o octal or 0b binary integer of any
// size and sign. Underscores between digits are accepted.
func parseInt(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Errorf("invalid integer %q", s)
	}
	return x, nil
}
