package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	jamnodes "github.com/adityasai1234/jam-nodes"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	typeStyle     = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	successStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

func newListCmd(cfgPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, *debug)
			if err != nil {
				return err
			}

			fmt.Println(headerStyle.Render("Registered nodes"))
			fmt.Println()

			for _, meta := range a.registry.GetAllMetadata() {
				caps := capabilitySummary(meta)
				line := fmt.Sprintf("  %s %s %s",
					typeStyle.Render(fmt.Sprintf("%-16s", meta.Type)),
					categoryStyle.Render(fmt.Sprintf("%-12s", string(meta.Category))),
					meta.Description)
				if caps != "" {
					line += categoryStyle.Render("  [" + caps + "]")
				}
				fmt.Println(line)
			}

			return nil
		},
	}
}

func capabilitySummary(meta jamnodes.NodeMetadata) string {
	var caps []string
	if meta.Capabilities.SupportsEnrichment {
		caps = append(caps, "enrichment")
	}
	if meta.Capabilities.SupportsBulkActions {
		caps = append(caps, "bulk")
	}
	if meta.Capabilities.SupportsRerun {
		caps = append(caps, "rerun")
	}
	if meta.Capabilities.SupportsApproval {
		caps = append(caps, "approval")
	}
	return strings.Join(caps, ", ")
}
