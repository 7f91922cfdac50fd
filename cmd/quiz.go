package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer a generated batch interactively and record the results",
	Long: `Generate a personalized batch and answer it in the terminal.

Every answer is appended to the answer history and folded into the template
statistics, so later batches adapt to the results.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().IntP("count", "n", 5, "Number of questions to generate")
	quizCmd.Flags().Int("week", 0, "Study week to restrict templates to (0 = any)")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	week, _ := cmd.Flags().GetInt("week")
	ctx := cmd.Context()

	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	qs := rt.Engine().Generate(ctx, count, week)
	if len(qs) == 0 {
		fmt.Println("No questions could be generated. Import vocabulary or check the template bank.")
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct int

	for i, q := range qs {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(qs))
		fmt.Println(q.Prompt)
		for j, o := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, o)
		}

		start := time.Now()
		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Println("(skipped)")
			fmt.Println()
			continue
		}
		choice, err := strconv.Atoi(answer)
		if err != nil || choice < 1 || choice > len(q.Options) {
			fmt.Printf("(not an option between 1 and %d, skipped)\n\n", len(q.Options))
			continue
		}

		ok := choice-1 == q.CorrectIndex
		if ok {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.CorrectAnswer())
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()

		if err := recordAnswer(ctx, rt, q, ok, time.Since(start)); err != nil {
			rt.log.WithError(err).Warn("could not record answer")
		}
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(qs))
	return nil
}
