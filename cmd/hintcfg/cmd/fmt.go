package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqweaver/hintcfg/pkg/extrinsic"
	"github.com/seqweaver/hintcfg/pkg/logger"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>...",
	Short: "Rewrite config files in canonical form",
	Long: `Fmt parses each file and reprints it in canonical form: aligned
columns, sources in declared order, weight rows in canonical feature
order. The rewritten file parses to an equivalent table.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite files in place instead of printing to stdout")
	fmtCmd.Flags().Bool("check", false, "exit non-zero if any file is not canonical")
}

func runFmt(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	check, _ := cmd.Flags().GetBool("check")

	dirty := 0
	for _, path := range args {
		t, err := extrinsic.ParseFile(path)
		if err != nil {
			return err
		}
		canonical := t.String()

		original, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if string(original) == canonical {
			continue
		}
		dirty++

		switch {
		case check:
			fmt.Println(path)
		case write:
			if err := t.WriteFile(path); err != nil {
				return err
			}
			logger.Successf("rewrote %s", path)
		default:
			fmt.Print(canonical)
		}
	}

	if check && dirty > 0 {
		return fmt.Errorf("%d file(s) not in canonical form", dirty)
	}
	return nil
}
