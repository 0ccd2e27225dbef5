// Package app wires together the logging router, a room, its sim.Loop, and
// the HTTP/WebSocket transport into one runnable server.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"arena-server/internal/net/ws"
	"arena-server/internal/sim"
	"arena-server/internal/telemetry"
	"arena-server/logging"
	loggingSinks "arena-server/logging/sinks"
	restHTTP "arena-server/internal/net/http"
	"arena-server/room"
)

// Config configures app.Run.
type Config struct {
	Logger   telemetry.Logger
	Addr     string
	RoomID   string
	RoomCfg  room.Config
}

// Run builds the logging router, one room, and its engine loop, then serves
// HTTP/WebSocket traffic until ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg Config) error {
	stdLogger := log.Default()

	logCfg := logging.DefaultConfig()
	sinks := map[string]logging.Sink{
		"console": loggingSinks.NewConsole(os.Stdout),
	}
	router, err := logging.NewRouter(logCfg, logging.SystemClock{}, stdLogger, sinks)
	if err != nil {
		return fmt.Errorf("construct logging router: %w", err)
	}
	defer func() {
		if cerr := router.Close(ctx); cerr != nil {
			stdLogger.Printf("failed to close logging router: %v", cerr)
		}
	}()

	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.WrapLogger(stdLogger)
	}
	metrics := telemetry.WrapMetrics(router.Metrics())

	roomID := cfg.RoomID
	if roomID == "" {
		roomID = "arena-1"
	}
	roomCfg := cfg.RoomCfg.Normalized()

	r := room.NewRoom(roomID, roomCfg, logger, metrics, logging.SystemClock{}, router)

	loopCfg := sim.LoopConfig{
		TickRate:        60,
		CatchupMaxTicks: 5,
		CommandCapacity: 4096,
		PerActorLimit:   64,
		WarningStep:     512,
	}

	var handler *ws.Handler
	loop := sim.NewLoop(r, loopCfg, sim.LoopHooks{
		AfterStep: func(result sim.LoopStepResult) {
			telemetry.RecordTick(result.Duration)
			telemetry.SetPlayersActive(r.PlayerCount())
			if handler != nil {
				handler.Broadcast(result.Snapshot)
			}
		},
		OnCommandDrop: func(reason string, _ sim.Command) {
			telemetry.RecordCommandDrop(reason)
		},
	})
	handler = ws.NewHandler(r, loop, ws.HandlerConfig{Logger: stdLogger})

	stop := make(chan struct{})
	go loop.Run(stop)
	defer close(stop)

	telemetry.SetRoomsActive(1)

	mux := restHTTP.NewRouter(restHTTP.RouterConfig{
		Rooms: singleRoomLister{room: r, id: roomID},
		WS:    http.HandlerFunc(handler.Handle),
	})

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{Addr: addr, Handler: mux}
	stdLogger.Printf("server listening on %s", srv.Addr)

	serveDone := make(chan struct{})
	defer close(serveDone)
	go func() {
		select {
		case <-ctx.Done():
			_ = srv.Shutdown(context.Background())
		case <-serveDone:
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

type singleRoomLister struct {
	room *room.Room
	id   string
}

func (s singleRoomLister) ListRooms() []restHTTP.RoomInfo {
	return []restHTTP.RoomInfo{{ID: s.id, Players: s.room.PlayerCount(), Phase: string(s.room.Phase())}}
}
