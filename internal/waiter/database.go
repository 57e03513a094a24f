package waiter

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// DatabaseConfig holds the MySQL server connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DatabaseConfigFromEnv reads the DB_* variables, loading the project .env first
func DatabaseConfigFromEnv(projectRoot string) DatabaseConfig {
	// a missing .env is fine, the process environment is used
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	return DatabaseConfig{
		Host:     envOr("DB_HOST", "127.0.0.1"),
		Port:     envOr("DB_PORT", "3306"),
		User:     envOr("DB_USERNAME", "root"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_DATABASE"),
	}
}

// Address returns host:port
func (c DatabaseConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// DSN returns the go-sql-driver/mysql data source name
func (c DatabaseConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = c.Address()
	cfg.DBName = c.Name
	return cfg.FormatDSN()
}

// WaitForDatabase polls the server until it answers a ping or the timeout expires
func (w *Waiter) WaitForDatabase(ctx context.Context, db DatabaseConfig) error {
	conn, err := sql.Open("mysql", db.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer conn.Close()

	var lastErr error
	ping := func() bool {
		pingCtx, cancel := context.WithTimeout(ctx, w.config.Interval)
		defer cancel()
		lastErr = conn.PingContext(pingCtx)
		return lastErr == nil
	}

	if !w.WaitFor(ping) {
		return fmt.Errorf("database at %s did not answer within %s: %w", db.Address(), w.config.Timeout, lastErr)
	}
	return nil
}

func envOr(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}
