// Command seed loads a JSON file of questions into the database.
//
// Usage:
//
//	seed -file questions.json [-db barprep.db]
//
// The file format matches the admin export endpoint: a top-level
// "questions" array of {prompt, choices, answer, explanation, topic}.
// Entries failing validation are logged and skipped.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/barprep/backend/internal/domain/question"
	"github.com/barprep/backend/internal/store"
)

type seedFile struct {
	Questions []struct {
		Prompt      string   `json:"prompt"`
		Choices     []string `json:"choices"`
		Answer      string   `json:"answer"`
		Explanation string   `json:"explanation"`
		Topic       string   `json:"topic"`
	} `json:"questions"`
}

func main() {
	file := flag.String("file", "questions.json", "path to the question JSON file")
	dbPath := flag.String("db", "barprep.db", "path to the sqlite database")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("failed to read seed file", "file", *file, "error", err)
		os.Exit(1)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		logger.Error("failed to parse seed file", "file", *file, "error", err)
		os.Exit(1)
	}

	db, err := store.NewSQLite(*dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	created, skipped := 0, 0
	for _, entry := range seed.Questions {
		q, err := question.New(entry.Prompt, entry.Choices, entry.Answer, entry.Explanation, entry.Topic)
		if err != nil {
			logger.Warn("skipping invalid question", "prompt", entry.Prompt, "error", err)
			skipped++
			continue
		}
		if err := db.SaveQuestion(ctx, q); err != nil {
			logger.Error("failed to save question", "prompt", entry.Prompt, "error", err)
			skipped++
			continue
		}
		created++
	}

	logger.Info("seeding complete", "created", created, "skipped", skipped)
}
