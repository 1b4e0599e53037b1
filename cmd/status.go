package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devmole/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show disk capacity",
	Long:  "Per-filesystem capacity overview for the machine's real mounts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		mounts, err := status.Collect()
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(mounts)
		}

		fmt.Fprint(cmd.OutOrStdout(), status.Render(mounts))
		return nil
	},
}

func init() {
	statusCmd.Flags().Bool("json", false, "Output as JSON")
}
