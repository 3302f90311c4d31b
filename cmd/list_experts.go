package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tutorial-landing/pkg/config"
	"tutorial-landing/pkg/services"
	"tutorial-landing/pkg/youtube"
)

// newListExpertsCmd creates a new command for listing experts
func newListExpertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-experts",
		Short: "List the featured experts",
		Long:  `List the experts of the site file with their titles and shortened bios.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return listExperts(svc)
		},
	}
}

func listExperts(svc *services.Service) error {
	experts, err := svc.GetExperts()
	if err != nil {
		return err
	}

	fmt.Println("Experts:")
	fmt.Println("========")

	for _, expert := range experts {
		fmt.Printf("%s - %s\n", expert.Name, expert.Title)
		fmt.Printf("  %s\n", youtube.Truncate(expert.Bio, config.BioLimit))
		fmt.Println()
	}

	fmt.Printf("Total: %d experts\n", len(experts))
	return nil
}
