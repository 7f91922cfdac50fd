package problemgen

import "github.com/studyplan/qengine/internal/skill"

// Config controls question selection and assembly.
type Config struct {
	// WeakShare is the fraction of a batch reserved for weak categories.
	WeakShare float64

	// WeakThreshold is the accuracy below which a category counts as weak.
	WeakThreshold float64

	// LearningZone is the historical template accuracy judged to give the
	// best challenge. Templates closest to it are preferred.
	LearningZone float64

	// RecentWindow is how many of the latest logs feed level estimation.
	RecentWindow int

	// GeneralStartDifficulty seeds the progression of the general sweep.
	GeneralStartDifficulty int

	// WeakAreaDrillSize is the batch size of a single-category weak-area drill.
	WeakAreaDrillSize int

	// MaxOptions caps the number of answer options per question.
	MaxOptions int

	// VocabDistractors is how many suggested words a vocabulary template gets.
	VocabDistractors int

	// DrillDistractorWords is how many candidate words a definition drill
	// draws distractor definitions from.
	DrillDistractorWords int

	// Labels maps categories to the free-text log labels that identify them.
	Labels skill.LabelMap

	// Validators run in order on every assembled question; the first
	// failure drops the question.
	Validators []Validator
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		WeakShare:              0.6,
		WeakThreshold:          0.7,
		LearningZone:           0.6,
		RecentWindow:           30,
		GeneralStartDifficulty: 3,
		WeakAreaDrillSize:      5,
		MaxOptions:             4,
		VocabDistractors:       3,
		DrillDistractorWords:   6,
		Labels:                 skill.DefaultLabels(),
		Validators: []Validator{
			&StructuralValidator{},
			&OptionsValidator{},
		},
	}
}
