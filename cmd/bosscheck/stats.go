package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"bosscheck/internal/checklist"
)

const statsBarWidth = 20

var (
	statsDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))  // Green
	statsRegionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")) // Gray
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion progress per region",
	Long:  `Prints how many bosses are marked completed in each region, with an overall total.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, _, err := loadAll()
		if err != nil {
			return err
		}
		return showStats(cmd.OutOrStdout(), rows)
	},
}

func showStats(out io.Writer, rows []checklist.Row) error {
	type tally struct {
		done  int
		total int
	}

	// catalog order, not alphabetical
	var order []string
	counts := make(map[string]*tally)
	for _, r := range rows {
		t, ok := counts[r.Region]
		if !ok {
			t = &tally{}
			counts[r.Region] = t
			order = append(order, r.Region)
		}
		t.total++
		if r.Checked {
			t.done++
		}
	}

	nameWidth := 0
	for _, region := range order {
		if len(region) > nameWidth {
			nameWidth = len(region)
		}
	}

	done, total := 0, 0
	for _, region := range order {
		t := counts[region]
		done += t.done
		total += t.total

		filled := 0
		if t.total > 0 {
			filled = t.done * statsBarWidth / t.total
		}
		bar := statsDoneStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", statsBarWidth-filled)
		fmt.Fprintf(out, "%s %s %d/%d\n", statsRegionStyle.Render(fmt.Sprintf("%-*s", nameWidth, region)), bar, t.done, t.total)
	}

	fmt.Fprintf(out, "\nTotal: %d/%d completed\n", done, total)
	return nil
}
