package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app is the state shared by the subcommands.
type app struct {
	v   *viper.Viper
	cfg *Config
	log *zap.Logger
}

// NewRootCommand returns the settlement command with all subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "settlement",
		Short: "Decode settlement details.",
		Long:  "Decode settlement details: whitelist, auction rate bump, fees and signed hash.",

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			a.cfg, err = loadConfig(a.v)
			if err != nil {
				return err
			}

			a.log, err = newLogger(a.cfg.Log)
			if err != nil {
				return err
			}

			a.log.Debug("loaded config", zap.Any("config", a.cfg))

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file")
	pf.String("details", "", "hex encoded settlement details")
	pf.String("interaction", "", "hex encoded interaction ending in the address table")
	pf.Uint64("now", 0, "current time in seconds (default: system time)")
	pf.Int32("decimals", 0, "decimals used to present fees")
	pf.String("log-level", "info", "log level")
	pf.Bool("log-development", false, "use the development logger")

	binds := map[string]string{
		"config":          "config",
		"details":         "details",
		"interaction":     "interaction",
		"now":             "now",
		"decimals":        "decimals",
		"log.level":       "log-level",
		"log.development": "log-development",
	}
	for key, flag := range binds {
		// BindPFlag only fails for a nil flag.
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		a.lengthCommand(),
		a.feeCommand(),
		a.resolverFeeCommand(),
		a.hashCommand(),
		a.allowedCommand(),
		a.bumpCommand(),
		a.inspectCommand(),
		a.encodeCommand(),
	)

	return root
}

// run wraps a subcommand so failures are logged.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil {
			a.log.Error("command failed", zap.String("command", cmd.Name()), zap.Error(err))
		}

		return err
	}
}
