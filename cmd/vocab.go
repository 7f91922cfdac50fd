package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyplan/qengine/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Vocabulary drills and review scheduling",
}

var vocabDrillCmd = &cobra.Command{
	Use:   "drill <word>...",
	Short: "Build definition questions for the given words",
	Long: `Build one "most nearly means" question per word. With --due the words
are taken from the review schedule instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		due, _ := cmd.Flags().GetInt("due")
		asJSON, _ := cmd.Flags().GetBool("json")
		ctx := cmd.Context()

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		words := args
		if due > 0 {
			pool, err := rt.vocabCache.GetOrLoad(ctx)
			if err != nil {
				return err
			}
			for _, e := range vocab.Due(pool, time.Now(), due) {
				words = append(words, e.Word)
			}
		}
		if len(words) == 0 {
			return fmt.Errorf("no words given; pass words or --due N")
		}

		qs := rt.Engine().CreateVocabularyQuestions(ctx, words)
		return printQuestions(os.Stdout, qs, len(words), asJSON)
	},
}

var vocabDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List words due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		pool, err := rt.vocabCache.GetOrLoad(cmd.Context())
		if err != nil {
			return err
		}
		due := vocab.Due(pool, time.Now(), limit)
		if len(due) == 0 {
			fmt.Println("Nothing due.")
			return nil
		}

		fmt.Printf("%-20s  %4s  %7s  %6s  %s\n", "Word", "Diff", "Mastery", "Errors", "Last seen")
		fmt.Println(strings.Repeat("─", 64))
		for _, e := range due {
			seen := "never"
			if !e.LastEncountered.IsZero() {
				seen = e.LastEncountered.Local().Format("2006-01-02")
			}
			fmt.Printf("%-20s  %4d  %6.0f%%  %6d  %s\n",
				e.Word, e.Difficulty, e.MasteryLevel*100, e.ErrorCount, seen)
		}
		return nil
	},
}

var vocabReviewCmd = &cobra.Command{
	Use:   "review <word>",
	Short: "Record a review of one word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		correct, _ := cmd.Flags().GetBool("correct")
		diffVal, _ := cmd.Flags().GetString("difficulty")
		ctx := cmd.Context()

		var diff vocab.ReviewDifficulty
		switch strings.ToLower(diffVal) {
		case "easy":
			diff = vocab.ReviewEasy
		case "medium":
			diff = vocab.ReviewMedium
		case "hard":
			diff = vocab.ReviewHard
		default:
			return fmt.Errorf("invalid difficulty %q: must be easy, medium or hard", diffVal)
		}

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		pool, err := rt.vocabCache.GetOrLoad(ctx)
		if err != nil {
			return err
		}
		found := vocab.FindByWords(pool, args)
		if len(found) == 0 {
			return fmt.Errorf("unknown word %q", args[0])
		}

		updated := vocab.UpdateProgress(found[0], correct, diff, time.Now())
		if err := rt.vocab.SaveProgress(ctx, vocab.ProgressOf(updated)); err != nil {
			return err
		}
		fmt.Printf("%s: mastery %.0f%%, next review in %s\n",
			updated.Word, updated.MasteryLevel*100, vocab.ReviewInterval(updated).Round(time.Hour))
		return nil
	},
}

func init() {
	vocabDrillCmd.Flags().Int("due", 0, "Also drill up to N words due for review")
	vocabDrillCmd.Flags().Bool("json", false, "Print questions as JSON")
	vocabDueCmd.Flags().IntP("limit", "n", 20, "Maximum number of words to list (0 = all)")
	vocabReviewCmd.Flags().Bool("correct", false, "Whether the word was recalled correctly")
	vocabReviewCmd.Flags().String("difficulty", "medium", "How hard the review felt: easy, medium or hard")

	vocabCmd.AddCommand(vocabDrillCmd)
	vocabCmd.AddCommand(vocabDueCmd)
	vocabCmd.AddCommand(vocabReviewCmd)
}
