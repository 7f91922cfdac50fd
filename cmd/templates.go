package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studyplan/qengine/internal/skill"
	"github.com/studyplan/qengine/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the template bank",
}

var templatesCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a template bank and list its templates",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("templates")
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			path = "templates.yaml"
		}
		catVal, _ := cmd.Flags().GetString("category")

		tmpls, err := templates.LoadFile(path)
		if err != nil {
			return err
		}
		if catVal != "" {
			c, err := skill.ParseCategory(catVal)
			if err != nil {
				return err
			}
			var filtered []templates.Template
			for _, t := range tmpls {
				if t.Category == c {
					filtered = append(filtered, t)
				}
			}
			tmpls = filtered
		}

		fmt.Printf("%-24s  %-10s  %4s  %-9s  %s\n", "ID", "Category", "Diff", "Weeks", "Answer")
		fmt.Println(strings.Repeat("─", 72))
		for _, t := range tmpls {
			weeks := "any"
			if t.StartWeek > 0 || t.EndWeek > 0 {
				weeks = fmt.Sprintf("%d-%s", t.StartWeek, endWeek(t.EndWeek))
			}
			answer, _ := t.CorrectAnswer()
			fmt.Printf("%-24s  %-10s  %4d  %-9s  %s\n", t.ID, t.Category, t.Difficulty, weeks, answer)
		}
		fmt.Printf("\n%d templates\n", len(tmpls))

		warnings := templates.Validate(tmpls)
		for _, w := range warnings {
			fmt.Printf("warning: %s: %s\n", w.TemplateID, w.Message)
		}
		if len(warnings) > 0 {
			return fmt.Errorf("%d template warnings", len(warnings))
		}
		return nil
	},
}

func endWeek(w int) string {
	if w == 0 {
		return "…"
	}
	return fmt.Sprint(w)
}

func init() {
	templatesCheckCmd.Flags().String("category", "", "Only list templates of this category")
	templatesCmd.AddCommand(templatesCheckCmd)
}
