package main

import (
	"context"
	"log"
	"os"

	"arena-server/internal/app"
	"arena-server/internal/telemetry"
	"arena-server/room"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	cfg := app.Config{
		Logger:  telemetry.WrapLogger(logger),
		RoomCfg: room.DefaultConfig(),
	}
	if addr := os.Getenv("ARENA_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if seed := os.Getenv("ARENA_SEED"); seed != "" {
		cfg.RoomCfg.Seed = seed
	}
	if err := app.Run(context.Background(), cfg); err != nil {
		log.Fatalf("%v", err)
	}
}
