package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	log     = logrus.New()
)

// rootCmd is the base command when sable is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "sable",
	Short: "Sable language toolchain",
	Long:  "Command line tools for working with Sable source files.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sable.yaml)")
	flags.BoolP("debug", "D", false, "enable debug messages")
	viper.BindPFlags(flags)
	rootCmd.AddCommand(lexCmd)
}

// initConfig reads in the config file and SABLE_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".sable")
		viper.AddConfigPath("$HOME")
	}
	viper.SetEnvPrefix("sable")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("config", viper.ConfigFileUsed()).Debug("loaded config file")
	}

	if viper.GetBool("debug") {
		log.SetLevel(logrus.DebugLevel)
	}
}
