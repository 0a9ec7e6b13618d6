package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/expectimax-2048/internal/agent"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List all available agents",
	Long:  `Shows a list of all agents registered in the binary.`,
	Run:   runAgents,
}

func runAgents(cmd *cobra.Command, args []string) {
	agents := agent.List()

	if len(agents) == 0 {
		fmt.Println("No agents available.")
		return
	}

	fmt.Println("Available agents:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, a := range agents {
		if len(a.Name) > maxNameLen {
			maxNameLen = len(a.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	// Print agents
	for _, a := range agents {
		fmt.Printf("  %-*s  %s\n", maxNameLen, a.Name, a.Description)
	}

	fmt.Println()
	fmt.Println("Run 'e2048 play <name>' to watch an agent play.")
}
