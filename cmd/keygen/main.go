package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/places-directory/internal/config"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/pkg/logger"
	"github.com/places-directory/internal/repository/postgres"
	"go.uber.org/zap"
)

// keygen manages the API key allowlist from the command line.
//
//	keygen -list
//	keygen -generate "partner integration"
//	keygen -activate <key> | -deactivate <key>
//	keygen -delete <key>

func main() {
	var (
		list       = flag.Bool("list", false, "list all API keys")
		generate   = flag.String("generate", "", "generate a new API key with the given description")
		activate   = flag.String("activate", "", "activate the given API key")
		deactivate = flag.String("deactivate", "", "deactivate the given API key")
		del        = flag.String("delete", "", "delete the given API key")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("error")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := postgres.NewAPIKeyRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch {
	case *list:
		keys, err := repo.List(ctx)
		if err != nil {
			fatal("failed to list API keys", err, log)
		}
		if len(keys) == 0 {
			fmt.Println("No API keys found.")
			return
		}
		fmt.Printf("%-5s %-46s %-8s %-20s %s\n", "ID", "KEY", "ACTIVE", "CREATED", "DESCRIPTION")
		for _, k := range keys {
			fmt.Printf("%-5d %-46s %-8t %-20s %s\n",
				k.ID, k.Key, k.IsActive, k.CreatedAt.Format("2006-01-02 15:04:05"), k.Description)
		}

	case *generate != "":
		key, err := generateKey()
		if err != nil {
			fatal("failed to generate key material", err, log)
		}
		apiKey := &domain.APIKey{
			Key:         key,
			Description: *generate,
			IsActive:    true,
		}
		if err := repo.Create(ctx, apiKey); err != nil {
			fatal("failed to store API key", err, log)
		}
		fmt.Printf("Generated API key (id=%d):\n%s\n", apiKey.ID, apiKey.Key)

	case *activate != "":
		if err := repo.SetActive(ctx, *activate, true); err != nil {
			fatal("failed to activate API key", err, log)
		}
		fmt.Println("API key activated.")

	case *deactivate != "":
		if err := repo.SetActive(ctx, *deactivate, false); err != nil {
			fatal("failed to deactivate API key", err, log)
		}
		fmt.Println("API key deactivated.")

	case *del != "":
		if err := repo.Delete(ctx, *del); err != nil {
			fatal("failed to delete API key", err, log)
		}
		fmt.Println("API key deleted.")

	default:
		flag.Usage()
		os.Exit(2)
	}
}

// generateKey returns a 32-byte random token in URL-safe base64,
// matching the format the service has always issued.
func generateKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func fatal(msg string, err error, log *zap.Logger) {
	log.Error(msg, zap.Error(err))
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
