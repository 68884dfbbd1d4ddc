package vinfoCommand

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	versionservice "github.com/syspeek/syspeek/internal/services/versionService"
	"github.com/spf13/cobra"
)

func NewVinfoCommand() *cobra.Command {
	var (
		// Language id as 4 hex digits, resolved against the file's translation table
		languageID string
		// Explicit language/codepage pair, bypassing the translation table
		langHex string
		cpHex   string
		// Read only the fixed numeric record, skipping string tables
		numbersOnly bool
		// Also probe the DllGetVersion export (Windows)
		dllVersion bool
		// Emit JSON instead of a table
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "vinfo [path]",
		Short: "Read version resource metadata from an executable or DLL",
		Long: `Read the Win32 version resource of an executable, DLL, or driver.

Prints the numeric file/product versions plus the descriptive strings
(CompanyName, FileDescription, LegalCopyright, ...) stored in the binary.
Without a path, the running syspeek binary is inspected.

The string tables are localized; by default the first language listed in the
file's translation table is used. Pass --language-id to pick a language (its
codepage is resolved from the translation table), or --lang and --codepage
together to address a string table directly.

Examples:
  syspeek vinfo C:\Windows\System32\kernel32.dll
  syspeek vinfo ./setup.exe --language-id 041d
  syspeek vinfo ./shell32.dll --dll --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			opts := versionservice.Options{
				LanguageHex: langHex,
				CodepageHex: cpHex,
				VersionOnly: numbersOnly,
				DLLVersion:  dllVersion,
			}

			if languageID != "" {
				id, err := parseLanguageID(languageID)
				if err != nil {
					return err
				}
				opts.LanguageID = id
			}

			v, err := versionservice.ReadFile(path, opts)
			if err != nil {
				return fmt.Errorf("reading version info: %w", err)
			}

			if asJSON {
				return printJSON(cmd, v)
			}

			printTable(cmd, v)
			return nil
		},
	}

	cmd.Flags().StringVar(&languageID, "language-id", "", "Language id as hex digits, e.g. 0409")
	cmd.Flags().StringVar(&langHex, "lang", "", "Explicit language as 4 hex digits (requires --codepage)")
	cmd.Flags().StringVar(&cpHex, "codepage", "", "Explicit codepage as 4 hex digits (requires --lang)")
	cmd.Flags().BoolVarP(&numbersOnly, "numbers-only", "n", false, "Read only the numeric version record")
	cmd.Flags().BoolVar(&dllVersion, "dll", false, "Also query the DllGetVersion export (Windows only)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	cmd.MarkFlagsRequiredTogether("lang", "codepage")

	return cmd
}

func parseLanguageID(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	id, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid language id %q: %w", s, err)
	}
	return uint16(id), nil
}

func printTable(cmd *cobra.Command, v *versionservice.VersionInfo) {
	if !v.Found() && v.DLLVersion() == "" {
		cmd.Println("No version information found.")
		return
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Value"})

	t.AppendRow(table.Row{"FixedFileVersion", v.FixedFileVersion()})
	t.AppendRow(table.Row{"FixedProductVersion", v.FixedProductVersion()})

	for _, name := range versionservice.StringFieldNames {
		if value := v.Field(name); value != "" {
			t.AppendRow(table.Row{name, value})
		}
	}

	if langHex, cpHex := v.Language(); langHex != "" || cpHex != "" {
		t.AppendRow(table.Row{"Language/Codepage", langHex + "/" + cpHex})
	}
	if dv := v.DLLVersion(); dv != "" {
		t.AppendRow(table.Row{"DllGetVersion", dv})
	}

	cmd.Println(t.Render())
}

type vinfoJSON struct {
	Found               bool              `json:"found"`
	FixedFileVersion    string            `json:"fixedFileVersion,omitempty"`
	FixedProductVersion string            `json:"fixedProductVersion,omitempty"`
	Language            string            `json:"language,omitempty"`
	Codepage            string            `json:"codepage,omitempty"`
	Strings             map[string]string `json:"strings,omitempty"`
	DLLVersion          string            `json:"dllVersion,omitempty"`
}

func printJSON(cmd *cobra.Command, v *versionservice.VersionInfo) error {
	out := vinfoJSON{
		Found:               v.Found(),
		FixedFileVersion:    v.FixedFileVersion(),
		FixedProductVersion: v.FixedProductVersion(),
		DLLVersion:          v.DLLVersion(),
	}
	out.Language, out.Codepage = v.Language()

	fields := make(map[string]string)
	for _, name := range versionservice.StringFieldNames {
		if value := v.Field(name); value != "" {
			fields[name] = value
		}
	}
	if len(fields) > 0 {
		out.Strings = fields
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}
