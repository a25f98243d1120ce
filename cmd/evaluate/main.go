package main

// Run the extraction accuracy report against the bundled fixture corpus:
//   go run ./cmd/evaluate

import (
	"encoding/json"
	"log"
	"os"

	"registration-backend/internal/evaluation"
	"registration-backend/internal/extraction"
	"registration-backend/internal/gazetteer"
)

func main() {
	pipeline := extraction.NewPipeline(gazetteer.Default())

	eval, err := evaluation.New(pipeline)
	if err != nil {
		log.Fatalf("load fixtures: %v", err)
	}

	report := eval.EvaluateAll()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}
