package showCommand

import (
	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show commands print information in the selected domain, i.e. show host.",
		Long: `Print host and environment information.

Show identification for the current host (OS, architecture, node name/id),
its network interfaces, and the process environment.

Run syspeek show --help to see all options.
`,
	}

	// Attach subcommands
	showCmd.AddCommand(NewHostCmd())
	showCmd.AddCommand(NewEnvCmd())
	showCmd.AddCommand(NewNetCmd())

	return showCmd
}
