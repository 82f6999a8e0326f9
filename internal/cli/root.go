package cli

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gallery-service/internal/galleryclient"
)

var (
	serverURL string
	namespace string
	timeout   time.Duration
	verbose   bool

	client *galleryclient.Client
)

var rootCmd = &cobra.Command{
	Use:   "galleryctl",
	Short: "Browse and pull exhibits from a gallery server",
	Long: `galleryctl talks to a gallery server: it shows the gallery settings,
lists and searches exhibits, asks the server to clone or update an exhibit,
and renders the card grid as HTML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		client = galleryclient.NewClient(serverURL, namespace, timeout)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Gallery server base URL")
	rootCmd.PersistentFlags().StringVar(&namespace, "namespace", "jupyterlab-gallery", "URL namespace the gallery endpoints are mounted under")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
