package showCommand

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	environmentservice "github.com/syspeek/syspeek/internal/services/environmentService"
	"github.com/spf13/cobra"
)

func NewEnvCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the process environment as a table",
		Long:  `List environment variables sorted by name. Use --filter to narrow by substring match on the name.`,
		Run: func(cmd *cobra.Command, args []string) {
			t := table.NewWriter()
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Value"})

			count := 0
			for _, v := range environmentservice.Variables() {
				if filter != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(filter)) {
					continue
				}
				t.AppendRow(table.Row{v.Name, v.Value})
				count++
			}
			t.AppendFooter(table.Row{fmt.Sprintf("%d variables", count), ""})

			fmt.Println(t.Render())
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only show variables whose name contains this string")

	return cmd
}
