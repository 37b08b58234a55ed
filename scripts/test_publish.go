//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Smoke test for the places event stream: publishes a synthetic
// place.created event and verifies the stats worker consumes it
// (the message leaves the pending list once processed).
//
//	go run scripts/test_publish.go -redis localhost:6379

type PlaceEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	PlaceID    int64     `json:"place_id"`
	OwnerType  string    `json:"owner_type"`
	OccurredAt time.Time `json:"occurred_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	group := flag.String("group", "places-stats-workers", "consumer group to watch")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := PlaceEvent{
		EventID:    uuid.NewString(),
		Type:       "place.created",
		PlaceID:    -1,
		OwnerType:  "company",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "places:events",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: places:events\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.EventID)

	fmt.Printf("\nWaiting for the worker to drain the pending list...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout: message still pending, is the worker running?")
			return
		case <-ticker.C:
			pending, err := client.XPending(ctx, "places:events", *group).Result()
			if err != nil && err != redis.Nil {
				continue
			}
			if pending == nil || pending.Count == 0 {
				fmt.Println("Worker processed the event.")
				return
			}
		}
	}
}
