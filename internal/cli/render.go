package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gallery-service/internal/render"
)

var renderLauncher bool

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the exhibit card grid as HTML",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderLauncher, "launcher", false, "Embed the gallery in a launcher body")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	g, err := client.Gallery(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching gallery: %w", err)
	}
	reply, err := client.Exhibits(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching exhibits: %w", err)
	}

	if renderLauncher {
		return render.RenderLauncher(cmd.OutOrStdout(), *g, reply.Exhibits)
	}
	return render.RenderGallery(cmd.OutOrStdout(), *g, reply.Exhibits)
}
