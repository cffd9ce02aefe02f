package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kordlan/harmonia_backend/config"
	_ "github.com/lib/pq"
)

// InitializeDatabase creates the application database if it doesn't exist.
// It connects to the default 'postgres' database to create it.
// This should be called once during setup, before the schema is applied.
func InitializeDatabase(cfg *config.Config) error {
	if cfg.Database.DBName == "" {
		return fmt.Errorf("no database name configured")
	}

	// Connect to 'postgres' database
	postgresConfig := Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   "postgres",
		SSLMode:  cfg.Database.SSLMode,
	}

	conn, err := openSQLDB(postgresConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close()

	if err := createDatabaseIfNotExists(conn, cfg.Database.DBName); err != nil {
		return fmt.Errorf("failed to create database %q: %w", cfg.Database.DBName, err)
	}

	return nil
}

// createDatabaseIfNotExists creates a database if it doesn't already exist
func createDatabaseIfNotExists(conn *sql.DB, dbName string) error {
	// Check if database exists
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	err := conn.QueryRowContext(context.Background(), query, dbName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		return nil // Database already exists
	}

	// Create the database
	createQuery := fmt.Sprintf("CREATE DATABASE %s", dbName)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = conn.ExecContext(ctx, createQuery)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	return nil
}
