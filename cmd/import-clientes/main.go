package main

import (
	"flag"
	"gestion_casos_go/config"
	"gestion_casos_go/db"
	"gestion_casos_go/models"
	"gestion_casos_go/services"
	"log"
	"os"
)

func main() {
	filePath := flag.String("file", "", "Path to the clients xlsx workbook")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("Usage: import-clientes -file clientes.xlsx")
	}

	cfg := config.Load()

	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Cliente{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *filePath, err)
	}
	defer f.Close()

	result, err := services.ImportarClientes(db.DB, f)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Processed %d rows: %d created, %d skipped", result.TotalProcessed, result.SuccessCount, result.SkippedCount)
	for _, e := range result.Errors {
		log.Printf("  - %s", e)
	}
}
