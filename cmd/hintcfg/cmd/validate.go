package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqweaver/hintcfg/pkg/extrinsic"
	"github.com/seqweaver/hintcfg/pkg/logger"
	"github.com/seqweaver/hintcfg/pkg/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate extrinsic config files",
	Long: `Validate parses each file and checks the invariants the predictor
relies on: every weight row carries one tuple per declared source in
[SOURCES] order, no row references an undeclared source code, and the
required sections are present. Any violation is fatal for the file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Bool("strict", false, "treat lint warnings as failures")
	validateCmd.Flags().String("report", "", "directory to write JSON validation reports to")
}

func runValidate(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	reportDir, _ := cmd.Flags().GetString("report")

	failed := 0
	for _, path := range args {
		rec := report.NewValidation(path)

		t, err := extrinsic.ParseFile(path)
		if err != nil {
			rec.AddError(err)
		} else {
			for _, p := range t.Lint() {
				rec.AddWarning(p)
			}
		}
		rec.Finish(t)
		rec.Render(os.Stdout)

		if !rec.Passed || (strict && rec.Count(report.SeverityWarning) > 0) {
			failed++
		}

		if reportDir != "" {
			written, err := rec.WriteJSON(reportDir)
			if err != nil {
				return err
			}
			logger.Debugf("report written to %s", written)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
	}
	logger.Successf("%d file(s) validated", len(args))
	return nil
}
