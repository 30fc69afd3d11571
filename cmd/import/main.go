// One-shot bulk import of the legacy "DAILY REPORT (Responses)" spreadsheet
// into the visits table.
//
//	go run ./cmd/import -file "DAILY REPORT (Responses).xlsx" -owner sr_user
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/rajudas/field-sales-api/internal/config"
	"github.com/rajudas/field-sales-api/internal/infra/database"
	"github.com/rajudas/field-sales-api/internal/infra/importer"
)

func main() {
	file := flag.String("file", "", "path to the xlsx export")
	owner := flag.String("owner", "sr_user", "username to assign imported rows to")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.Database.URL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open %s: %v", *file, err)
	}
	defer f.Close()

	im := importer.New(database.NewVisitRepository(db), *owner)
	sum, err := im.Import(ctx, f)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("import done: %d imported, %d skipped, %d failed", sum.Imported, sum.Skipped, sum.Failed)
}
