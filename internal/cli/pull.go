package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull <id>",
	Short: "Clone an exhibit, or update it if already cloned",
	Args:  cobra.ExactArgs(1),
	RunE:  runPull,
}

func init() {
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 0 {
		return fmt.Errorf("invalid exhibit id %q", args[0])
	}

	reply, err := client.Pull(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("pulling exhibit %d: %w", id, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", reply.Message, reply.Exhibit.Title, reply.Exhibit.LocalPath)
	return nil
}
