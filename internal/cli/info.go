package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show gallery settings",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	g, err := client.Gallery(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching gallery: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Title:       %s\n", g.Title)
	fmt.Fprintf(out, "API version: %s\n", g.APIVersion)
	fmt.Fprintf(out, "Configured:  %t\n", g.ExhibitsConfigured)
	fmt.Fprintf(out, "Hide empty:  %t\n", g.HideGalleryWithoutExhibits)
	return nil
}
