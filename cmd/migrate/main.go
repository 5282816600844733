package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"

	"filinglens/internal/cache/sqlite"
)

func main() {
	_ = godotenv.Load()

	defaultPath := os.Getenv("FILINGLENS_CACHE_SQLITE_PATH")
	if defaultPath == "" {
		defaultPath = "data/filinglens.db"
	}
	dbPath := flag.String("db", defaultPath, "path to the sqlite cache database")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: migrate [-db path] [up|down|steps N|version]")
		os.Exit(1)
	}

	db, err := sqlite.Open(*dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	m, err := sqlite.NewMigrator(db)
	if err != nil {
		db.Close()
		log.Fatalf("failed to create migrate instance: %v", err)
	}
	defer m.Close()

	cmd := flag.Arg(0)
	switch cmd {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("migration up failed: %v", err)
		}
		log.Println("migrations applied successfully")

	case "down":
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("migration down failed: %v", err)
		}
		log.Println("migrations reverted successfully")

	case "steps":
		if flag.NArg() < 2 {
			log.Fatal("steps requires a number argument")
		}
		n, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			log.Fatalf("invalid steps argument: %v", err)
		}
		if err := m.Steps(n); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("migration steps failed: %v", err)
		}
		log.Printf("applied %d migration steps", n)

	case "version":
		v, dirty, err := m.Version()
		if err != nil && err != migrate.ErrNilVersion {
			log.Fatalf("failed to get version: %v", err)
		}
		log.Printf("version: %d, dirty: %v", v, dirty)

	default:
		fmt.Printf("unknown command: %s\n", cmd)
		os.Exit(1)
	}
}
