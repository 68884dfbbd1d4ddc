package showCommand

import (
	"fmt"

	environmentservice "github.com/syspeek/syspeek/internal/services/environmentService"
	"github.com/spf13/cobra"
)

func NewNetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "net",
		Short: "Show only network-related host information",
		Long:  `Shows network interfaces, hardware addresses, and gateway info for the current host.`,
		Run: func(cmd *cobra.Command, args []string) {
			info := environmentservice.GatherHostInfo()
			fmt.Println(info.NetFormat())
		},
	}

	return cmd
}
