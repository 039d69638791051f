package main

import (
	_ "github.com/joho/godotenv/autoload"

	"context"
	"log"
	"os"
	"os/signal"

	"teamforge/migrations"
	"teamforge/utils/env"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := migrations.RunMigrations(ctx); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
	log.Println("migrations up to date")

	if seed, _ := env.GetBool("SEED_DEMO_STUDENTS"); seed {
		if err := seedDemoStudents(ctx); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Println("demo students seeded")
	}
}
