package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seqweaver/hintcfg/pkg/extrinsic"
	"github.com/seqweaver/hintcfg/pkg/logger"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show the parsed contents of a config file",
	Long:  `Show parses a config file and prints its sources, flags, groups and weight matrix`,
	Args:  cobra.ExactArgs(1),
	RunE:  showTable,
}

func showTable(cmd *cobra.Command, args []string) error {
	t, err := extrinsic.ParseFile(args[0])
	if err != nil {
		return err
	}

	logger.KeyValue("file", args[0])
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "CODE\tEVIDENCE\tFLAGS")
	_, _ = fmt.Fprintln(w, "----\t--------\t-----")
	for _, code := range t.Sources {
		desc := extrinsic.SourceDescriptions[code]
		if desc == "" {
			desc = "(undocumented)"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", code, desc, strings.Join(t.FlagsFor(code), " "))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(t.Groups) > 0 {
		fmt.Println()
		fmt.Println("GROUPS")
		for _, g := range t.Groups {
			fmt.Println("  " + g)
		}
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "FEATURE\tBONUS\tMALUS"
	for _, code := range t.Sources {
		header += "\t" + code
	}
	_, _ = fmt.Fprintln(w, header)
	for _, row := range t.Rows {
		cells := []string{
			row.Feature,
			extrinsic.FormatNumber(row.Bonus),
			extrinsic.FormatNumber(row.Malus),
		}
		for _, sw := range row.Weights {
			var vals []string
			for _, v := range sw.Values {
				vals = append(vals, extrinsic.FormatNumber(v))
			}
			cells = append(cells, strings.Join(vals, " "))
		}
		_, _ = fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}
