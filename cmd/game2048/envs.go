package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helpingstar/gym-game2048/internal/registry"
)

var envsCmd = &cobra.Command{
	Use:   "envs",
	Short: "List registered environments",
	Long:  `Shows a list of all environments registered in this build.`,
	Run:   runEnvs,
}

func runEnvs(cmd *cobra.Command, args []string) {
	ids := registry.List()

	if len(ids) == 0 {
		fmt.Println("No environments registered.")
		return
	}

	fmt.Println("Registered environments:")
	fmt.Println()
	for _, id := range ids {
		fmt.Printf("  %s\n", id)
	}
	fmt.Println()
	fmt.Println("Run 'game2048 play' or 'game2048 rollout' to use one.")
}
