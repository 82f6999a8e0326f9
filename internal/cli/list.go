package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"gallery-service/internal/adapters/primary/http/dto"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List exhibits",
	Long: `List the exhibits the server offers, in display order.

The optional query is matched against titles and descriptions
(case-insensitive, fuzzy).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	reply, err := client.Exhibits(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching exhibits: %w", err)
	}
	exhibits := filterExhibits(reply.Exhibits, query)

	out := cmd.OutOrStdout()
	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(exhibits)
	}

	if len(exhibits) == 0 {
		fmt.Fprintln(out, "No exhibits found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPATH")
	for _, e := range exhibits {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Title, status(e), e.LocalPath)
	}
	return w.Flush()
}

// filterExhibits keeps exhibits whose title or description matches query.
// An empty query keeps everything.
func filterExhibits(exhibits []dto.Exhibit, query string) []dto.Exhibit {
	filtered := make([]dto.Exhibit, 0, len(exhibits))
	term := strings.ToLower(strings.TrimSpace(query))
	for _, e := range exhibits {
		if term == "" || matchesQuery(e, term) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func matchesQuery(e dto.Exhibit, term string) bool {
	title := strings.ToLower(e.Title)
	description := ""
	if e.Description != nil {
		description = strings.ToLower(*e.Description)
	}
	return fuzzy.Match(term, title) ||
		strings.Contains(title, term) ||
		strings.Contains(description, term)
}

func status(e dto.Exhibit) string {
	switch {
	case !e.IsCloned:
		return "not cloned"
	case e.UpdatesAvailable != nil && *e.UpdatesAvailable:
		return "updates available"
	default:
		return "cloned"
	}
}
