package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"bosscheck/internal/checklist"
)

// seam for tests
var askOne = survey.AskOne

func init() {
	resetCmd.Flags().Bool("force", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear every completion mark",
	Long:  `Overwrites the save file with an empty completion set after asking for confirmation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		savePath, err := resolveSavePath()
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			confirmed := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Clear all completion marks in %s?", savePath),
				Default: false,
			}
			if err := askOne(prompt, &confirmed); err != nil {
				return err
			}
			if !confirmed {
				cmd.Println("Aborted.")
				return nil
			}
		}

		if err := checklist.SaveState(savePath, nil); err != nil {
			return err
		}
		cmd.Printf("Cleared %s\n", savePath)
		return nil
	},
}
