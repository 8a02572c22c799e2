package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/usering-around/theory-test-exam/internal/bank"
)

// export parses a question workbook and writes the recovered bank as JSON
// to stdout, row errors included.
func main() {
	path := flag.String("xlsx", "data/questions.xlsx", "path to the question workbook")
	indent := flag.Bool("indent", false, "pretty-print the output")
	flag.Parse()

	b, err := bank.ParseFile(*path)
	if err != nil {
		log.Printf("question bank error: %v", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if *indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(b); err != nil {
		log.Printf("encode bank: %v", err)
		os.Exit(1)
	}
}
