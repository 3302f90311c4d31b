package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tutorial-landing/pkg/services"
	"tutorial-landing/pkg/youtube"
)

// newShowVideoCmd creates a new command for showing video details
func newShowVideoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-video [id]",
		Short: "Show details of a specific video",
		Long:  `Show detailed information about a video of the video config identified by its YouTube ID.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return showVideo(svc, args[0])
		},
	}
}

// showVideo displays details about a specific video
func showVideo(svc *services.Service, id string) error {
	video, err := svc.GetVideo(id)
	if err != nil {
		return err
	}

	fmt.Printf("Video: %s\n", video.Title)
	fmt.Printf("ID: %s\n", video.ID)
	fmt.Printf("New: %t\n", video.IsNew)
	fmt.Println("================")
	fmt.Printf("Description: %s\n", video.Description)
	fmt.Printf("Thumbnail: %s\n", video.Thumbnail)
	fmt.Printf("Watch: %s\n", youtube.WatchURL(video.ID))
	fmt.Printf("Embed: %s\n", youtube.EmbedURL(video.ID))
	return nil
}
