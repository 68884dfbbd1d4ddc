package envCommand

import (
	"fmt"
	"os"

	environmentservice "github.com/syspeek/syspeek/internal/services/environmentService"
	"github.com/syspeek/syspeek/internal/services/environmentService/ui"
	"github.com/spf13/cobra"
)

func NewEnvCommand() *cobra.Command {
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Read & set process environment variables",
		Long: `Operations on the process environment.

Get, set, and test environment variables, or browse the full environment
in an interactive table with 'env browse'.
`,
	}

	envCmd.AddCommand(newGetCmd())
	envCmd.AddCommand(newSetCmd())
	envCmd.AddCommand(newHasCmd())
	envCmd.AddCommand(newBrowseCmd())

	return envCmd
}

func newGetCmd() *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Print the value of an environment variable",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(environmentservice.GetDefault(args[0], defaultValue))
		},
	}

	cmd.Flags().StringVarP(&defaultValue, "default", "d", "", "Value to print when the variable is unset")

	return cmd
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME VALUE",
		Short: "Set an environment variable in this process",
		Long:  `Set an environment variable for the current process and its children. The parent shell's environment is not affected.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return environmentservice.Set(args[0], args[1])
		},
	}
}

func newHasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has NAME",
		Short: "Exit 0 when the variable is set, 1 otherwise",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if environmentservice.Has(args[0]) {
				fmt.Println("set")
				return
			}
			fmt.Println("unset")
			os.Exit(1)
		},
	}
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse environment variables in an interactive table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.Run()
		},
	}
}
