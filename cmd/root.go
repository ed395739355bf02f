package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	log "github.com/harlequix/hamming/log"
	"github.com/harlequix/hamming/shell"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "hamming",
	Short: "Hamming(7,4) encoder and decoder",
	Long: `hamming encodes bytes as two Hamming(7,4) codewords and decodes
codewords back, correcting any single flipped bit per codeword.

Without a subcommand it reads commands from standard input:

  encode <binary>           prints the two codewords of a byte
  decode <binary> <binary>  prints the byte two codewords decode to

Any other word ends the session.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	RunE:              interactive,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file")
	rootCmd.PersistentFlags().String("loglevel", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("logfile", "", "write JSON trace logs to <logfile>.{trace,debug,warn}")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "show codeword layout and decode status")
	rootCmd.Flags().String("prompt", "", "prompt printed before each command")

	viper.BindPFlag("LogLevel", rootCmd.PersistentFlags().Lookup("loglevel"))
	viper.BindPFlag("Logfile", rootCmd.PersistentFlags().Lookup("logfile"))
	viper.BindPFlag("Verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("Prompt", rootCmd.Flags().Lookup("prompt"))
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}
	config, err := shell.LoadConfig()
	if err != nil {
		return err
	}
	if err := log.SetLevel(config.LogLevel); err != nil {
		return err
	}
	log.SetTracer(config.Logfile)
	return nil
}

func interactive(cmd *cobra.Command, args []string) error {
	config, err := shell.LoadConfig()
	if err != nil {
		return err
	}
	session, err := shell.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), config)
	if err != nil {
		return err
	}
	return session.Run(cmd.Context())
}
