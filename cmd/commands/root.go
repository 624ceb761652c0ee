package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"diskrelay"
)

func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "diskrelay",
		Short:         "REST relay between the disk rental contracts, IPFS and the dapp",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to a YAML config file (environment variables always win)")

	root.AddCommand(
		newRunCommand(&configPath),
		newDeployCommand(&configPath),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), diskrelay.StringVersion())
			},
		},
	)

	return root
}
