package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kelsos/elevenlabs-workspace/internal/logger"
	"github.com/kelsos/elevenlabs-workspace/internal/tui"
	"github.com/kelsos/elevenlabs-workspace/pkg/models"
)

func newAutoProvisioningCmd(a *app) *cobra.Command {
	var enabled bool

	cmd := &cobra.Command{
		Use:   "auto-provisioning",
		Short: "Enable or disable automatic user provisioning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.workspace.UpdateUserAutoProvisioning(cmd.Context(), enabled)
			if err != nil {
				return err
			}
			state := "disabled"
			if enabled {
				state = "enabled"
			}
			return a.printer.Value(resp.Data, fmt.Sprintf("User auto provisioning %s", state))
		},
	}
	cmd.Flags().BoolVar(&enabled, "enabled", false, "Whether new users are provisioned automatically")
	_ = cmd.MarkFlagRequired("enabled")

	return cmd
}

func newSharingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sharing",
		Short: "Inspect or change the default sharing groups",
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the default sharing groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.workspace.GetDefaultSharingPreferences(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.SharingPreferences(resp.Data)
		},
	}

	var (
		groups []string
		clearGroups bool
	)
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the default sharing groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(groups) == 0 && !clearGroups {
				return errors.New("pass at least one --group or --clear")
			}
			if clearGroups {
				groups = nil
			}
			resp, err := a.workspace.UpdateDefaultSharingPreferences(cmd.Context(), groups)
			if err != nil {
				return err
			}
			return a.printer.Value(resp.Data, fmt.Sprintf("Default sharing groups set (%d)", len(groups)))
		},
	}
	setCmd.Flags().StringArrayVarP(&groups, "group", "g", nil, "Group ID to share new resources with (repeatable)")
	setCmd.Flags().BoolVar(&clearGroups, "clear", false, "Remove every default sharing group")
	setCmd.MarkFlagsMutuallyExclusive("group", "clear")

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Pick the default sharing groups interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.InitFileOnly(a.cfg.LogDir); err != nil {
				return err
			}
			saved, err := tui.RunSharingEditor(cmd.Context(), a.workspace)
			if errors.Is(err, tui.ErrCancelled) {
				fmt.Fprintln(a.stdout, "No changes saved")
				return nil
			}
			if err != nil {
				return err
			}
			return a.printer.SharingPreferences(&models.DefaultSharingPreferences{DefaultSharingGroups: saved})
		},
	}

	cmd.AddCommand(getCmd, setCmd, editCmd)
	return cmd
}

func newShareOptionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "share-options",
		Short: "List the users, groups and keys resources can be shared with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.workspace.GetShareOptions(cmd.Context())
			if err != nil {
				return err
			}
			var options []models.ShareOption
			if resp.Data != nil {
				options = *resp.Data
			}
			return a.printer.ShareOptions(options)
		},
	}
}
