package main

import (
	"context"
	"fmt"
	"leaguedecks-backend/internal/store"
	"log/slog"
	"os"
	"path/filepath"
)

const stateDir = "dev/.state"

const localConfig = `{
  database: {
    driver: "sqlite",
    file: "dev/.state/leaguedecks.db",
  },
  image_cache: {
    dir: "dev/.state/image-cache",
  },
}
`

func CreateStore(ctx context.Context) error {
	path := filepath.Join(stateDir, "leaguedecks.db")
	_, err := os.Stat(path)
	if err == nil {
		fmt.Println("database already created at", path)
		return nil
	}

	fmt.Println("creating database at", path)
	_, db, err := store.Config{Driver: store.DriverSqlite, File: path}.Open(ctx)
	if err != nil {
		return err
	}
	return db.Close()
}

func WriteLocalConfig() error {
	path := "config.local.json5"
	_, err := os.Stat(path)
	if err == nil {
		fmt.Println("local config already exists at", path)
		return nil
	}
	fmt.Println("writing local config to", path)
	return os.WriteFile(path, []byte(localConfig), 0666)
}

func PrintConfigLocations() {
	slog.Info("config.json5 holds the shared config, config.local.json5 overrides it for this machine.")
}
