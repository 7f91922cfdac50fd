package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyplan/qengine/internal/vocab"
)

var importCmd = &cobra.Command{
	Use:   "import <vocabulary.yaml>",
	Short: "Import vocabulary entries into the database",
	Long: `Import static vocabulary from a YAML file with a top-level "words" list.
Existing words are updated in place; learner progress is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := vocab.LoadFile(args[0])
		if err != nil {
			return err
		}

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.vocab.UpsertEntries(cmd.Context(), entries); err != nil {
			return err
		}
		rt.vocabCache.Invalidate()
		fmt.Printf("Imported %d words.\n", len(entries))
		return nil
	},
}
