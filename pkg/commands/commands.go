package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/appt/pkg/config"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "appt",
		Short: base.Wrap80("Schedule, update and look up appointments on the appointment service."),
		Long: base.Wrap80("appt keeps a local draft of one appointment and syncs the appointment list " +
			"with the remote service after every change. Configure the service with " +
			"--url, APPT_URL or a .appt.yaml file in the current or home directory."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().String("url", config.DefaultURL, "Base URL of the appointment service.")
	cmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error.")
	_ = viper.BindPFlag(config.KeyURL, cmd.PersistentFlags().Lookup("url"))
	_ = viper.BindPFlag(config.KeyLogLevel, cmd.PersistentFlags().Lookup("log-level"))

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addGet(topLevel)
	addDelete(topLevel)
	addAdd(topLevel)
	addUpdate(topLevel)
	addDraft(topLevel)
	addUI(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}
