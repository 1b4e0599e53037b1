package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devmole/internal/ui"
	"github.com/lakshaymaurya-felt/devmole/pkg/whitelist"
)

var protectCmd = &cobra.Command{
	Use:   "protect [path]",
	Short: "Manage protected paths",
	Long:  "Add a path to the whitelist so cleanup never touches it. Without arguments, lists the protected paths.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wlPath := whitelist.DefaultPath()
		wl, err := whitelist.Load(wlPath)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			if len(wl.Paths) == 0 {
				fmt.Fprintln(out, ui.StyleMuted.Render("no protected paths"))
				return nil
			}
			for _, p := range wl.Paths {
				fmt.Fprintln(out, "  "+p)
			}
			return nil
		}

		if remove, _ := cmd.Flags().GetBool("remove"); remove {
			if !wl.Remove(args[0]) {
				return fmt.Errorf("%s is not protected", args[0])
			}
			fmt.Fprintln(out, "unprotected "+args[0])
		} else {
			wl.Add(args[0])
			fmt.Fprintln(out, "protected "+args[0])
		}
		return wl.Save(wlPath)
	},
}

func init() {
	protectCmd.Flags().Bool("remove", false, "Remove the path from the whitelist")
}
