// parsepdf parses a single invoice PDF and prints the extracted fields as
// JSON. Useful for checking a bill before importing it.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/huisbeheer/utility-tracker/internal/parse"
	"github.com/huisbeheer/utility-tracker/internal/pdftext"
)

func main() {
	accountsFile := flag.String("accounts", os.Getenv("ACCOUNTS_FILE"), "path to a JSON account table (empty = built-in list)")
	flag.Parse()

	if flag.NArg() != 1 {
		slog.Error("usage: parsepdf [-accounts file.json] <invoice.pdf>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	accounts, err := parse.LoadAccountTable(*accountsFile)
	if err != nil {
		logger.Error("failed to load account table", "path", *accountsFile, "error", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read file", "path", path, "error", err)
		os.Exit(1)
	}

	parser := parse.NewParser(pdftext.NewReader(pdftext.Config{}, logger), accounts, logger)
	parsed, err := parser.ParseInvoice(context.Background(), data, filepath.Base(path))
	if err != nil {
		logger.Error("failed to parse invoice", "path", path, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(parsed); err != nil {
		logger.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
}
