package showCommand

import (
	"fmt"
	"strings"

	environmentservice "github.com/syspeek/syspeek/internal/services/environmentService"
	"github.com/syspeek/syspeek/internal/utils/strutils"
	"github.com/spf13/cobra"
)

func NewHostCmd() *cobra.Command {
	var properties []string

	cmd := &cobra.Command{
		Use:   "host",
		Short: "Show host identification. You can pass multiple --property <propertyname> flags.",
		Long: `Show detailed host identification.

Available properties for --property:
  - nodename (alias: hostname)
  - nodeid
  - os
  - displayname
  - osversion (alias: version)
  - arch
  - processors
  - cpumodel
  - cpuvendor
  - uptime
`,
		Run: func(cmd *cobra.Command, args []string) {
			info := environmentservice.GatherHostInfo()

			if len(properties) == 0 {
				fmt.Println(info.Format(false))
				return
			}

			for _, prop := range properties {
				key := strings.ToLower(prop)

				switch key {
				case "nodename", "hostname":
					printProperty(key, info.NodeName)
				case "nodeid":
					printProperty(key, info.NodeID)
				case "os":
					printProperty(key, info.OSName)
				case "displayname":
					printProperty(key, info.OSDisplayName)
				case "osversion", "version":
					printProperty(key, info.OSVersion)
				case "arch":
					printProperty(key, info.Architecture)
				case "processors":
					printProperty(key, fmt.Sprintf("%d", info.ProcessorCount))
				case "cpumodel":
					printProperty(key, info.CPUModel)
				case "cpuvendor":
					printProperty(key, info.CPUVendor)
				case "uptime":
					printProperty(key, info.Uptime.String())
				default:
					fmt.Printf("unknown property: %s\n", prop)
				}
			}
		},
	}

	cmd.Flags().StringSliceVarP(&properties, "property", "p", nil, "Print only the named property (repeatable)")

	return cmd
}

// Print a single host property as a "Key: value" line.
func printProperty(key, value string) {
	fmt.Printf("%s: %s\n", strutils.Capitalize(key), value)
}
