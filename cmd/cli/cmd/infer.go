package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pcbuild/core/inference"
	"pcbuild/core/types"
	"pcbuild/core/ui"
)

// inferCmd shows what the name rules derive from a product name
var inferCmd = &cobra.Command{
	Use:   "infer <name>",
	Short: "Show socket and memory inferred from a product name",
	Long: `Run the name inference rules against a product name.

Examples:
  pcbuild infer "Intel Core i5-13400F"
  pcbuild infer "MSI PRO B760M-E DDR4"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := strings.Join(args, " ")
		out := ui.NewWriter(cmd.OutOrStdout(), noColor)
		out.Header(name)

		cpuSocket := inference.CPUSocketFromName(name)
		boardSocket := inference.ChipsetSocket(name)
		socket := cpuSocket
		if socket == "" {
			socket = boardSocket
		}

		table := out.NewTable("RULE", "RESULT")
		table.AddRow("cpu socket", orDash(cpuSocket))
		table.AddRow("cpu memory", orDash(inference.CPUMemoryFromName(name)))
		table.AddRow("chipset socket", orDash(boardSocket))
		table.AddRow("memory in name", orDash(inference.NormalizeMemory(name)))
		table.AddRow("capacity", capacity(name))
		table.AddRow("wattage", wattage(name))
		table.AddRow("platform", orDash(string(inference.Platform(socket))))
		table.Render()
	},
}

func capacity(name string) string {
	gb := inference.CapacityGB(types.ComponentRecord{Name: name})
	if gb <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dGB", gb)
}

func wattage(name string) string {
	watts := inference.PSUWattage(types.ComponentRecord{Name: name})
	if watts <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dW", watts)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
