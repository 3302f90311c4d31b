package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	applog "tutorial-landing/pkg/log"
	"tutorial-landing/pkg/services"
)

// newListVideosCmd creates a new command for listing videos
func newListVideosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-videos",
		Short: "List all tutorial videos",
		Long:  `List the videos of the video config in page order, marking the ones flagged as new.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return listVideos(svc)
		},
	}
}

// newService loads the configuration and returns a content service without enrichment
func newService() (*services.Service, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return services.NewService(cfg, nil, applog.WithComponent("content")), nil
}

// listVideos displays all videos
func listVideos(svc *services.Service) error {
	videos, err := svc.GetVideos()
	if err != nil {
		return err
	}

	fmt.Println("Tutorial Videos:")
	fmt.Println("================")

	for i, video := range videos {
		marker := ""
		if video.IsNew {
			marker = " [new]"
		}
		fmt.Printf("%d. %s%s\n", i+1, video.Title, marker)
		fmt.Printf("   ID: %s\n", video.ID)
	}

	fmt.Printf("\nTotal: %d videos\n", len(videos))
	return nil
}
