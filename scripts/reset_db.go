package main

import (
	"context"
	"fmt"
	"log"

	"loket-backend/internal/config"
	"loket-backend/internal/db"
)

func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Database for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("WARNING: This will DELETE ALL ACCOUNTING DATA!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete all orders and ledger entries")
	fmt.Println("  - Delete all loket, kasir and PPOB reports")
	fmt.Println("  - Delete the PPOB journal and all alerts")
	fmt.Println("  - Recreate the demo businesses")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer pool.Close()

	fmt.Println()
	fmt.Println("Resetting database...")

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v\n", err)
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"alerts",
		"ppob_journal",
		"ppob_kasir_reports",
		"ppob_shift_reports",
		"kasir_reports",
		"loket_reports",
		"ledger_entries",
		"orders",
		"businesses",
	}

	for _, table := range tables {
		_, err = tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			log.Fatalf("Failed to truncate %s: %v\n", table, err)
		}
		fmt.Printf("  - Cleared %s\n", table)
	}

	businesses := []struct {
		id       string
		name     string
		category string
	}{
		{"biz-1", "Loket Pembayaran", "ppob"},
		{"biz-2", "Fotokopi & ATK", "retail"},
	}

	for _, b := range businesses {
		_, err = tx.Exec(ctx, `
			INSERT INTO businesses (id, name, category, is_active, created_at)
			VALUES ($1, $2, $3, TRUE, NOW())`,
			b.id, b.name, b.category,
		)
		if err != nil {
			log.Fatalf("Failed to create business %s: %v\n", b.id, err)
		}
	}
	fmt.Println("  - Created demo businesses")

	if err = tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit transaction: %v\n", err)
	}

	fmt.Println()
	fmt.Println("Database reset successful!")
	fmt.Println()
	fmt.Println("Get a token with: go run ./cmd/server -dev-token owner")
}
