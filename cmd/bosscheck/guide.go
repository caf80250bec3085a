package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const guideMarkdown = `# Boss Checker

Boss Checker is a checklist for game bosses, grouped by region.

## Files

- ` + "`config.json`" + ` — paths to the other two files, created on first run.
- ` + "`boss_data.json`" + ` — the boss catalog: an array of
  ` + "`{\"region\": ..., \"bosses\": [...]}`" + ` entries. Required.
- ` + "`default_save.json`" + ` — your completion marks, rewritten after every
  toggle.

## Keys

| Key | Action |
| --- | ------ |
| up/down, k/j | move the cursor |
| space, enter | toggle the selected boss |
| tab / shift+tab | cycle the region filter |
| / | type a name or region filter (esc to leave) |
| ? | expand help |
| q | quit |

## Commands

- ` + "`bosscheck`" + ` — open the checklist.
- ` + "`bosscheck stats`" + ` — per-region completion summary.
- ` + "`bosscheck reset`" + ` — clear the save file (asks first).
`

func init() {
	rootCmd.AddCommand(guideCmd)
}

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the usage guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return err
		}

		out, err := renderer.Render(guideMarkdown)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
