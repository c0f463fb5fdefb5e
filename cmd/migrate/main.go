package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/estatehub/backend/internal/config"
	"github.com/estatehub/backend/internal/logging"
	"github.com/estatehub/backend/internal/repository"
	"github.com/estatehub/backend/internal/storage"
)

// collectionKeys lists every collection the server persists.
var collectionKeys = []string{repository.ListingsKey, repository.ContactsKey}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   create the collections table if missing
  schema      same as default
  import      copy DATA_DIR JSON files into postgres
  export      write postgres collections back to DATA_DIR`)
	os.Exit(1)
}

func main() {
	cfg := config.Load()
	if _, err := logging.Setup(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		logging.Fatal("failed to set up logging", "error", err)
	}

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if cmd != "" && cmd != "schema" && cmd != "import" && cmd != "export" {
		usage()
	}

	ctx := context.Background()
	pool, err := storage.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	pg := storage.NewPgStorage(pool)
	if err := pg.EnsureSchema(ctx); err != nil {
		logging.Fatal("create collections table failed", "error", err)
	}
	slog.Info("collections table ready")

	local := storage.NewLocalStorage(cfg.DataDir)
	switch cmd {
	case "import":
		if err := copyCollections(ctx, local, pg); err != nil {
			logging.Fatal("import failed", "error", err)
		}
	case "export":
		if err := copyCollections(ctx, pg, local); err != nil {
			logging.Fatal("export failed", "error", err)
		}
	}
}

// copyCollections copies each collection document from src to dst
// byte-for-byte. Collections absent from src are skipped.
func copyCollections(ctx context.Context, src, dst storage.Storage) error {
	copied := 0
	for _, key := range collectionKeys {
		data, err := src.Load(ctx, key)
		if errors.Is(err, storage.ErrNotFound) {
			slog.Info("collection not found, skipping", "key", key)
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", key, err)
		}
		if err := dst.Save(ctx, key, data); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
		copied++
		slog.Info("collection copied", "key", key, "bytes", len(data))
	}
	slog.Info("copy completed", "count", copied)
	return nil
}
