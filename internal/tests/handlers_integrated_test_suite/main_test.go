package handlers_integrated_test_suite

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/rogerio-castellano/shophub/internal/db"
	"github.com/rogerio-castellano/shophub/internal/repo"
)

func TestMain(m *testing.M) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Println("DATABASE_URL not set, skipping integration tests")
		os.Exit(0)
	}

	var err error
	database, err = db.Connect(context.Background(), dbURL)
	if err != nil {
		fmt.Println("could not connect to database:", err)
		os.Exit(1)
	}
	productRepo = repo.NewPostgresProductRepository(database)
	sessionRepo = repo.NewPostgresSessionRepository(database)

	code := m.Run()
	database.Close()
	os.Exit(code)
}
