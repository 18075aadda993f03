package main

import (
	"fmt"
	"log"
	"os"

	"gitadora-skill-api/config"
	"gitadora-skill-api/fixtures"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDatabase()
	fixtureManager := fixtures.NewFixtures(config.DB)

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]

	switch command {
	case "seed":
		if err := fixtureManager.SeedCatalog(); err != nil {
			log.Fatal("Failed to seed catalog:", err)
		}
		fmt.Println("Catalog seeded successfully!")
	case "generate":
		if err := fixtureManager.GenerateTestData(); err != nil {
			log.Fatal("Failed to generate fixtures:", err)
		}
		fmt.Println("Fixtures generated successfully!")
	case "clear":
		if err := fixtureManager.ClearAllData(); err != nil {
			log.Fatal("Failed to clear fixtures:", err)
		}
		fmt.Println("All fixture data cleared!")
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures seed      - Seed game versions and the song catalog")
	fmt.Println("  go run ./cmd/fixtures generate  - Seed the catalog and create demo data")
	fmt.Println("  go run ./cmd/fixtures clear     - Clear all fixture data")
}
