// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys. Environment variables use the INTMAT_ prefix with dots
// replaced by underscores (det.max_order → INTMAT_DET_MAX_ORDER).
const (
	envPrefix = "INTMAT"

	keyLogLevel   = "log.level"
	keyShortcuts  = "det.shortcuts"
	keyMaxOrder   = "det.max_order"
	defaultLogLvl = "warn"
	logTimeFormat = "15:04:05"
)

// app holds the state shared by one root command and its subcommands.
// Every newRootCmd call gets its own viper instance, so tests never leak
// configuration into each other.
type app struct {
	v       *viper.Viper
	cfgFile string
	log     *slog.Logger
}

// newRootCmd creates the root command with all subcommands attached.
// It is used by main and by tests to obtain isolated instances.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.DiscardHandler)}
	a.v.SetDefault(keyLogLevel, defaultLogLvl)

	cmd := &cobra.Command{
		Use:   "intmat",
		Short: "Exact integer matrix arithmetic",
		Long: `intmat evaluates integer matrix operations exactly.

Matrices are written as literals with rows separated by ";" and entries by ","
(for example "1,2;3,4"). Determinants use recursive cofactor expansion, whose
cost grows factorially with the order; use --max-order to bound it.

Put "--" before arguments that start with a minus sign:
  intmat scale -- "-1,2;3,4" -3`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}

			return a.initLogger(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file")
	cmd.PersistentFlags().String("log-level", defaultLogLvl, `log level ("debug", "info", "warn", "error")`)
	_ = a.v.BindPFlag(keyLogLevel, cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(
		a.newDetCmd(),
		a.newMinorCmd(),
		a.newTransposeCmd(),
		a.newAddCmd(),
		a.newMulCmd(),
		a.newDotCmd(),
		a.newScaleCmd(),
	)

	return cmd
}

// loadConfig wires environment variables and the optional config file into viper.
func (a *app) loadConfig() error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile == "" {
		return nil
	}
	a.v.SetConfigFile(a.cfgFile)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", a.cfgFile, err)
	}

	return nil
}

// initLogger builds the tint handler on the command's stderr at the configured level.
func (a *app) initLogger(cmd *cobra.Command) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(a.v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("invalid %s: %w", keyLogLevel, err)
	}

	a.log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      lvl,
		TimeFormat: logTimeFormat,
		NoColor:    true,
	}))
	a.log.Debug("config loaded",
		slog.String("file", a.v.ConfigFileUsed()),
		slog.String("level", lvl.String()))

	return nil
}
