package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyplan/qengine/internal/problemgen"
	"github.com/studyplan/qengine/internal/skill"
	"github.com/studyplan/qengine/internal/vocab"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record an answer given outside qengine",
	Long: `Append one answer to the history. With --template the outcome also updates
that template's statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		label, _ := cmd.Flags().GetString("category")
		taskID, _ := cmd.Flags().GetString("task")
		templateID, _ := cmd.Flags().GetString("template")
		correct, _ := cmd.Flags().GetBool("correct")
		elapsed, _ := cmd.Flags().GetDuration("time")
		ctx := cmd.Context()

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		err = rt.logs.Append(ctx, skill.AnswerLog{
			TaskID:       taskID,
			Category:     label,
			Correct:      correct,
			Timestamp:    time.Now(),
			MinutesSpent: minutes(elapsed),
		})
		if err != nil {
			return err
		}
		if templateID != "" {
			if err := rt.perf.RecordOutcome(ctx, templateID, correct, int(elapsed.Milliseconds())); err != nil {
				return err
			}
		}
		fmt.Println("Recorded.")
		return nil
	},
}

func init() {
	recordCmd.Flags().String("category", "", "Free-text category label, e.g. \"grammar drill\" (required)")
	recordCmd.Flags().String("task", "", "Task identifier")
	recordCmd.Flags().String("template", "", "Template ID the question came from")
	recordCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	recordCmd.Flags().Duration("time", 0, "Time spent answering, e.g. 45s")
	_ = recordCmd.MarkFlagRequired("category")
}

// recordAnswer stores the outcome of a served question: the answer log,
// the template stats and, for vocabulary questions, the word's progress.
func recordAnswer(ctx context.Context, rt *runtime, q *problemgen.Question, correct bool, elapsed time.Duration) error {
	now := time.Now()
	err := rt.logs.Append(ctx, skill.AnswerLog{
		TaskID:       q.ID,
		Category:     categoryLabel(rt, q.Category),
		Correct:      correct,
		Timestamp:    now,
		MinutesSpent: minutes(elapsed),
	})
	if err != nil {
		return err
	}
	if err := rt.Engine().RecordOutcome(ctx, q, correct, elapsed); err != nil {
		return err
	}
	if q.Category != skill.CategoryVocab || len(q.VocabularyFocus) == 0 {
		return nil
	}

	pool, err := rt.vocabCache.GetOrLoad(ctx)
	if err != nil {
		return err
	}
	for _, e := range vocab.FindByWords(pool, q.VocabularyFocus[:1]) {
		updated := vocab.UpdateProgress(e, correct, vocab.ReviewMedium, now)
		if err := rt.vocab.SaveProgress(ctx, vocab.ProgressOf(updated)); err != nil {
			return err
		}
	}
	rt.vocabCache.Invalidate()
	return nil
}

// categoryLabel returns the first configured label for c, so that logged
// answers resolve back to the same category.
func categoryLabel(rt *runtime, c skill.Category) string {
	if labels := rt.cfg.Generator().Labels[c]; len(labels) > 0 {
		return labels[0]
	}
	return strings.ToLower(string(c))
}

func minutes(d time.Duration) int {
	return int(d.Round(time.Minute) / time.Minute)
}
