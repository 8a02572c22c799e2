package main

import (
	"log"
	"net/http"
	"os"

	"github.com/usering-around/theory-test-exam/internal/app"
	"github.com/usering-around/theory-test-exam/internal/bank"
)

func main() {
	cfg := app.LoadConfig()

	b, err := bank.ParseFile(cfg.QuestionsXLSX)
	if err != nil {
		log.Printf("question bank error: %v", err)
		os.Exit(1)
	}
	log.Printf("question bank loaded: %d questions, %d row errors", len(b.Questions), len(b.RowErrors))
	for _, re := range b.RowErrors {
		log.Printf("row %d skipped: %s", re.Row, re.Error)
	}

	r := app.NewRouter(cfg, b)

	log.Printf("theory-test-exam listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Printf("server stopped: %v", err)
		os.Exit(1)
	}
}
