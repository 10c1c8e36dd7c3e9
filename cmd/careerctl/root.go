package main

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix is shared with the server configuration.
const envPrefix = "CAREERFORGE"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "careerctl",
		Short:         "Turn raw career notes into LinkedIn bullets, a STAR story and a headline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env file is normal.
			_ = godotenv.Load()
		},
	}

	root.AddCommand(newGenerateCmd(v), newTonesCmd())
	return root
}
