package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyplan/qengine/internal/problemgen"
	"github.com/studyplan/qengine/internal/skill"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a personalized batch weighted toward weak areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		week, _ := cmd.Flags().GetInt("week")
		asJSON, _ := cmd.Flags().GetBool("json")
		if count < 1 {
			return fmt.Errorf("--count must be at least 1")
		}

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		qs := rt.Engine().Generate(cmd.Context(), count, week)
		return printQuestions(os.Stdout, qs, count, asJSON)
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category <grammar|reading|listening|vocab>",
	Short: "Generate questions for one skill category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := skill.ParseCategory(args[0])
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		week, _ := cmd.Flags().GetInt("week")
		weak, _ := cmd.Flags().GetBool("weak")
		asJSON, _ := cmd.Flags().GetBool("json")

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		var qs []*problemgen.Question
		if weak {
			count = rt.cfg.Engine.WeakAreaDrillSize
			qs = rt.Engine().WeakAreaQuestions(cmd.Context(), c)
		} else {
			qs = rt.Engine().GenerateForCategory(cmd.Context(), c, count, week)
		}
		return printQuestions(os.Stdout, qs, count, asJSON)
	},
}

func init() {
	for _, c := range []*cobra.Command{generateCmd, categoryCmd} {
		c.Flags().IntP("count", "n", 10, "Number of questions to generate")
		c.Flags().Int("week", problemgen.AnyWeek, "Study week to restrict templates to (0 = any)")
		c.Flags().Bool("json", false, "Print questions as JSON")
	}
	categoryCmd.Flags().Bool("weak", false, "Run the short weak-area drill instead")
}

// printQuestions writes qs as numbered text or as a JSON array, noting
// when fewer than requested could be produced.
func printQuestions(w io.Writer, qs []*problemgen.Question, requested int, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(qs); err != nil {
			return fmt.Errorf("encode questions: %w", err)
		}
		return nil
	}

	for i, q := range qs {
		fmt.Fprintf(w, "── Question %d/%d [%s, difficulty %d] ──\n",
			i+1, len(qs), skill.DisplayName(q.Category), q.Difficulty)
		fmt.Fprintln(w, q.Prompt)
		for j, o := range q.Options {
			fmt.Fprintf(w, "  %d) %s\n", j+1, o)
		}
		fmt.Fprintf(w, "Answer: %d) %s\n", q.CorrectIndex+1, q.CorrectAnswer())
		if q.Explanation != "" {
			fmt.Fprintf(w, "Explanation: %s\n", q.Explanation)
		}
		fmt.Fprintln(w)
	}
	if len(qs) < requested {
		fmt.Fprintf(w, "Only %d of %d questions could be built from the available templates and vocabulary.\n",
			len(qs), requested)
	}
	return nil
}
