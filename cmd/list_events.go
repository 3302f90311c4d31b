package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tutorial-landing/pkg/services"
)

// newListEventsCmd creates a new command for listing events
func newListEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-events",
		Short: "List upcoming events",
		Long:  `List the events of the site file with their dates and locations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return listEvents(svc)
		},
	}
}

func listEvents(svc *services.Service) error {
	events, err := svc.GetEvents()
	if err != nil {
		return err
	}

	fmt.Println("Events:")
	fmt.Println("=======")

	for _, event := range events {
		fmt.Printf("%s %s\n", event.Flag, event.Name)
		fmt.Printf("  %s, %s, %s\n", event.DisplayDate, event.City, event.Country)
		if event.Link != "" {
			fmt.Printf("  %s\n", event.Link)
		}
		fmt.Println()
	}

	fmt.Printf("Total: %d events\n", len(events))
	return nil
}
