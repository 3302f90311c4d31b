package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"tutorial-landing/pkg/config"
	applog "tutorial-landing/pkg/log"
)

// Configuration flags
var (
	apiKey      string
	bucketName  string
	portNumber  string
	logLevel    string
	siteConfig  string
	videoConfig string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tutorial-landing",
		Short: "Tutorial Landing builds and serves the AI-assisted engineering tutorial page",
		Long: `Tutorial Landing turns a list of YouTube links into the video config of the
tutorial landing page, and renders, serves or publishes that page together with its
events and expert bios.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&apiKey, "api-key", "k", "", "Set the YOUTUBE_API_KEY (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set the LOG_LEVEL (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&siteConfig, "site", "", "Set the SITE_CONFIG file (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&videoConfig, "videos", "", "Set the VIDEO_CONFIG file (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newGenerateConfigCmd())
	rootCmd.AddCommand(newGenerateVideoConfigCmd())
	rootCmd.AddCommand(newListVideosCmd())
	rootCmd.AddCommand(newListEventsCmd())
	rootCmd.AddCommand(newListExpertsCmd())
	rootCmd.AddCommand(newShowVideoCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newPublishCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags and
// configures the global logger.
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	setenv("YOUTUBE_API_KEY", apiKey)
	setenv("BUCKET_NAME", bucketName)
	setenv("PORT", portNumber)
	setenv("LOG_LEVEL", logLevel)
	setenv("SITE_CONFIG", siteConfig)
	setenv("VIDEO_CONFIG", videoConfig)

	// Load configuration from environment variables (potentially set above)
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	applog.Configure(applog.Config{Level: cfg.LogLevel, Console: true})
	return cfg, nil
}

func setenv(key, value string) {
	if value != "" {
		os.Setenv(key, value)
	}
}
