package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seqweaver/hintcfg/pkg/config"
	"github.com/seqweaver/hintcfg/pkg/profile"
	"github.com/seqweaver/hintcfg/pkg/utils"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage annotation workspaces",
	Long:  `Manage the directories of extrinsic config files the toolkit knows about`,
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured workspaces",
	RunE:  listWorkspaces,
}

var workspaceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new workspace",
	RunE:  addWorkspace,
}

var workspaceRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a workspace",
	RunE:  removeWorkspace,
}

func init() {
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceAddCmd)
	workspaceCmd.AddCommand(workspaceRemoveCmd)
}

func listWorkspaces(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	if len(cfg.Workspaces) == 0 {
		fmt.Println("No workspaces configured")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDIRECTORY\tDEFAULT PROFILE")
	_, _ = fmt.Fprintln(w, "----\t---------\t---------------")

	for _, ws := range cfg.Workspaces {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", ws.Name, ws.Dir, ws.DefaultProfile)
	}

	return w.Flush()
}

func addWorkspace(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	var ws config.Workspace

	ws.Name, err = utils.PromptString("Workspace name:", "", true)
	if err != nil {
		return err
	}
	if cfg.Lookup(ws.Name) != nil {
		return fmt.Errorf("workspace %s already exists", ws.Name)
	}

	ws.Dir, err = utils.PromptString("Config directory:", ".", true)
	if err != nil {
		return err
	}
	if _, err := os.Stat(ws.Dir); err != nil {
		return fmt.Errorf("config directory: %w", err)
	}

	names := make([]string, 0)
	for _, info := range profile.DefaultRegistry.List() {
		names = append(names, info.Name)
	}
	ws.DefaultProfile, err = utils.PromptSelect("Default profile for new configs:", names)
	if err != nil {
		return err
	}

	cfg.Workspaces = append(cfg.Workspaces, ws)
	if err := config.SaveWorkspaces(cfg); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	fmt.Printf("Workspace %s added successfully\n", ws.Name)
	return nil
}

func removeWorkspace(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWorkspaces()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	if len(cfg.Workspaces) == 0 {
		fmt.Println("No workspaces to remove")
		return nil
	}

	names := make([]string, len(cfg.Workspaces))
	for i, ws := range cfg.Workspaces {
		names[i] = ws.Name
	}

	selected, err := utils.PromptSelect("Select workspace to remove:", names)
	if err != nil {
		return err
	}

	confirm, err := utils.PromptConfirm(fmt.Sprintf("Are you sure you want to remove %s?", selected), false)
	if err != nil {
		return err
	}
	if !confirm {
		fmt.Println("Removal cancelled")
		return nil
	}

	newWorkspaces := make([]config.Workspace, 0, len(cfg.Workspaces)-1)
	for _, ws := range cfg.Workspaces {
		if ws.Name != selected {
			newWorkspaces = append(newWorkspaces, ws)
		}
	}
	cfg.Workspaces = newWorkspaces

	if err := config.SaveWorkspaces(cfg); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	fmt.Printf("Workspace %s removed successfully\n", selected)
	return nil
}
