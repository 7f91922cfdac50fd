package skill

import "time"

// AnswerLog is one historical attempt by the learner. Logs are append-only
// and owned by the log store.
type AnswerLog struct {
	TaskID       string    `json:"task_id" db:"task_id"`
	Category     string    `json:"category" db:"category"`
	Correct      bool      `json:"correct" db:"correct"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
	MinutesSpent int       `json:"minutes_spent" db:"minutes_spent"`
}

// Recent returns the last n logs, assuming logs are ordered oldest first.
func Recent(logs []AnswerLog, n int) []AnswerLog {
	if n <= 0 || len(logs) <= n {
		return logs
	}
	return logs[len(logs)-n:]
}
