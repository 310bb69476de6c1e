package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the app's version. Overwritten at build time with -ldflags.
var Version = "dev"

const envPrefix = "RANGEQ"

// Config keys, also the flag names.
const (
	keyConfig   = "config"
	keyLogLevel = "log-level"
	keyModulus  = "modulus"
	keyInput    = "input"
)

type app struct {
	vip *viper.Viper
	log *zap.Logger

	// core builds the logging core at the configured level.
	core func(*cobra.Command, zapcore.Level) zapcore.Core
}

func consoleCore(cmd *cobra.Command, lvl zapcore.Level) zapcore.Core {
	return zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()), zap.NewAtomicLevelAt(lvl))
}

// newRootCmd builds the command tree. core replaces the console logger when not nil.
func newRootCmd(core func(*cobra.Command, zapcore.Level) zapcore.Core) *cobra.Command {
	a := &app{vip: viper.New(), log: zap.NewNop(), core: core}
	if a.core == nil {
		a.core = consoleCore
	}
	root := &cobra.Command{
		Use:               "rangeq",
		Short:             "Run range query scripts",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}
	fs := root.PersistentFlags()
	fs.StringP(keyConfig, "c", "", "load configuration from file")
	fs.String(keyLogLevel, "info", "log level: debug, info, warn or error")
	fs.Uint64(keyModulus, 0, "modulus of modsum and modprod trees")
	a.bind(fs)

	root.AddCommand(a.runCmd(), versionCmd())
	return root
}

func (a *app) bind(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = a.vip.BindPFlag(f.Name, f)
	})
}

// setup reads the config file if any, then builds the logger from the merged config.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.vip.SetEnvPrefix(envPrefix)
	a.vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.vip.AutomaticEnv()
	if file := a.vip.GetString(keyConfig); file != "" {
		a.vip.SetConfigFile(file)
		if err := a.vip.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
	}
	lvl, err := zapcore.ParseLevel(a.vip.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("parse %s: %w", keyLogLevel, err)
	}
	a.log = zap.New(a.core(cmd, lvl)).Named("rangeq")
	a.log.Debug("config loaded",
		zap.String("file", a.vip.ConfigFileUsed()),
		zap.Stringer("level", lvl),
		zap.Uint64(keyModulus, a.vip.GetUint64(keyModulus)),
	)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "rangeq", Version)
		},
	}
}
