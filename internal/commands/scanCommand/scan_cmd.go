package scanCommand

import (
	"fmt"

	scanservice "github.com/syspeek/syspeek/internal/services/scanService"
	"github.com/syspeek/syspeek/internal/utils/spinner"
	"github.com/spf13/cobra"
)

func NewScanPathCommand() *cobra.Command {
	var (
		// Limit scanned binaries
		limit int
		// Recursively traverse subdirectories
		recursive bool
		// Keep binaries without a version resource in the results
		includeBare bool
		// Filter results by file, product, or company name
		filter string
	)

	cmd := &cobra.Command{
		Use:   "scanpath [path]",
		Short: "Scan a directory for executables and list their version metadata",
		Long: `Scan a directory for PE binaries (.exe, .dll, .sys, ...) and read each
one's version resource. Results are listed with file & product versions,
product name, and company.

Examples:
  syspeek scanpath                       # Scan current directory
  syspeek scanpath C:\Windows\System32   # Scan a specific directory
  syspeek scanpath . -r --limit 100      # Recurse, capped at 100 binaries
  syspeek scanpath . -f microsoft        # Only Microsoft binaries
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			stop := spinner.StartSpinner(fmt.Sprintf("Scanning %s ", path))
			results, err := scanservice.ScanDirectory(path, scanservice.Options{
				Recursive:   recursive,
				Limit:       limit,
				IncludeBare: includeBare,
				Filter:      filter,
			})
			stop()
			if err != nil {
				return err
			}

			if len(results) == 0 {
				cmd.Println("No binaries with version information found.")
				return nil
			}

			cmd.Println(scanservice.RenderTable(results))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Limit number of scanned binaries (0 = unlimited)")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recursively traverse subdirectories")
	cmd.Flags().BoolVar(&includeBare, "include-bare", false, "Also list binaries without version info")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter by file, product, or company name")

	return cmd
}
