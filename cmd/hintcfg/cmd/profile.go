package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seqweaver/hintcfg/pkg/logger"
	"github.com/seqweaver/hintcfg/pkg/profile"
	"github.com/seqweaver/hintcfg/pkg/utils"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Work with configuration profiles",
	Long:  `Work with built-in and workspace configuration profiles`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	Long:  `List the built-in profiles plus any profile.yaml manifests found under the given directory`,
	RunE:  listProfiles,
}

var profileExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Write a built-in profile to a config file",
	Args:  cobra.ExactArgs(1),
	RunE:  exportProfile,
}

var profileNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a config file interactively",
	Long: `New walks through building a config file: pick a base profile, the
evidence sources the annotation run will have, and any source
parameter flags, then writes the result in canonical form.`,
	RunE: newProfile,
}

func init() {
	profileListCmd.Flags().StringP("dir", "d", "", "directory to scan for profile manifests")
	profileExportCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	profileNewCmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileExportCmd)
	profileCmd.AddCommand(profileNewCmd)
}

func listProfiles(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tKIND\tSOURCES\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t----\t-------\t-----------")

	for _, info := range profile.DefaultRegistry.List() {
		t, err := profile.DefaultRegistry.Get(info.Name)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s\tbuilt-in\t%s\t%s\n",
			info.Name, strings.Join(t.Sources, " "), info.Description)
	}

	dir, _ := cmd.Flags().GetString("dir")
	if dir != "" {
		discovered, err := profile.Discover(dir)
		if err != nil {
			return err
		}
		for _, d := range discovered {
			_, _ = fmt.Fprintf(w, "%s\tworkspace\t\t%s\n", d.Manifest.Name, d.Manifest.Description)
		}
	}

	return w.Flush()
}

func exportProfile(cmd *cobra.Command, args []string) error {
	t, err := profile.DefaultRegistry.Get(args[0])
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return t.Write(os.Stdout)
	}
	if err := t.WriteFile(output); err != nil {
		return err
	}
	logger.Successf("wrote profile %s to %s", args[0], output)
	return nil
}

func newProfile(cmd *cobra.Command, args []string) error {
	logger.Section("New extrinsic configuration")

	names := make([]string, 0)
	for _, info := range profile.DefaultRegistry.List() {
		names = append(names, info.Name)
	}
	base, err := utils.PromptSelect("Base profile:", names)
	if err != nil {
		return err
	}
	baseTable, err := profile.DefaultRegistry.Get(base)
	if err != nil {
		return err
	}

	sources, err := utils.PromptSources(baseTable.Sources)
	if err != nil {
		return err
	}
	t := profile.WithSources(baseTable, sources)

	t.Parameters, err = utils.PromptSourceParameters(sources)
	if err != nil {
		return err
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("generated table is invalid: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output, err = utils.PromptString("Output file:", "extrinsic.cfg", true)
		if err != nil {
			return err
		}
	}
	if err := t.WriteFile(output); err != nil {
		return err
	}
	logger.Successf("wrote %s (%d sources, %d weight rows)", output, len(t.Sources), len(t.Rows))
	return nil
}
