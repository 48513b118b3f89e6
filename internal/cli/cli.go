package cli

import (
	"fmt"
	"os"
	"strings"

	"diskfarm/internal/disks"
	"diskfarm/internal/logging"
	"diskfarm/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version info
var Version = "0.1.0"

type GlobalOptions struct {
	CfgFilePath string
	LogLevel    string
	LogFormat   string

	Logger *logrus.Logger
	Store  *storage.FileStore
	Disks  disks.Lister
}

func NewRootCMD() *cobra.Command {
	return newRootCMD(&GlobalOptions{
		Store: storage.NewOSFileStore(),
		Disks: disks.NewHostLister(),
	})
}

func newRootCMD(globalOptions *GlobalOptions) *cobra.Command {

	rootCMD := &cobra.Command{
		Use:     "diskfarm",
		Short:   "Disk farm configuration tool",
		Long:    "Creates, validates and inspects the TOML configuration describing disk farms and the servers they report to.",
		Version: Version,
		// errors are printed once, by Execute
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.initialize(cmd)
		},
	}

	// register global flags
	globalOptions.registerFlags(rootCMD)

	// add subcommands
	rootCMD.AddCommand(NewInitCommand(globalOptions))
	rootCMD.AddCommand(NewCheckCommand(globalOptions))
	rootCMD.AddCommand(NewDisksCommand(globalOptions))

	return rootCMD
}

func (options *GlobalOptions) registerFlags(cmd *cobra.Command) {
	// flags that can be used for each command
	cmd.PersistentFlags().StringVar(&options.CfgFilePath, "config_path", "diskfarm.toml", "Path to the disk farm configuration file. (Env: DISKFARM_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&options.LogLevel, "log-level", "info", "Logging level (trace, debug, info, warn, error). (Env: DISKFARM_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&options.LogFormat, "log-format", "json", "Log format (json, text). (Env: DISKFARM_LOG_FORMAT)")
}

// initialize resolves the global options from flags and environment and
// creates the logger. Flags set on the command line win over the environment.
func (options *GlobalOptions) initialize(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("DISKFARM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	options.CfgFilePath = v.GetString("config_path")
	options.LogLevel = v.GetString("log-level")
	options.LogFormat = v.GetString("log-format")

	options.Logger = logging.NewLoggerTo(cmd.ErrOrStderr(), options.LogLevel, options.LogFormat)
	options.Logger.Debugf("Using configuration file %s", options.CfgFilePath)

	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

func Execute() {

	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
