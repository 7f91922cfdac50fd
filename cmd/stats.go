package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studyplan/qengine/internal/difficulty"
	"github.com/studyplan/qengine/internal/problemgen"
	"github.com/studyplan/qengine/internal/skill"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()
		gen := rt.cfg.Generator()

		summary, err := rt.logs.Summary(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%-24s  %6s  %8s\n", "Label", "Answers", "Accuracy")
		fmt.Println(strings.Repeat("─", 44))
		for _, s := range summary {
			fmt.Printf("%-24s  %6d  %7.0f%%\n", s.Category, s.Total, s.Accuracy()*100)
		}

		recent, err := rt.logs.RecentLogs(ctx)
		if err != nil {
			return err
		}
		all, err := rt.logs.Recent(ctx, 0)
		if err != nil {
			return err
		}
		weak := problemgen.WeakCategories(all, gen.WeakThreshold, gen.Labels)

		fmt.Printf("\n%-12s  %5s  %s\n", "Category", "Level", "")
		fmt.Println(strings.Repeat("─", 28))
		for _, c := range skill.AllCategories() {
			mark := ""
			for _, w := range weak {
				if w == c {
					mark = "weak"
				}
			}
			fmt.Printf("%-12s  %5d  %s\n",
				skill.DisplayName(c), difficulty.EstimateLevel(c, recent, gen.Labels), mark)
		}

		stats, err := rt.perf.TemplateStats(ctx)
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			return nil
		}
		ids := make([]string, 0, len(stats))
		for id := range stats {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Printf("\n%-24s  %6s  %8s  %9s\n", "Template", "Served", "Accuracy", "Avg time")
		fmt.Println(strings.Repeat("─", 54))
		for _, id := range ids {
			s := stats[id]
			fmt.Printf("%-24s  %6d  %7.0f%%  %7.1fs\n",
				id, s.TimesServed, s.Accuracy()*100, s.AverageTimeMs/1000)
		}
		return nil
	},
}
