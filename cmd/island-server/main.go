// Package main is the entry point for the Financial Island game server.
// It only handles dependency injection and server initialization.
// NO business logic belongs here.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	"github.com/finlit-games/financial-island/server/internal/content"
	"github.com/finlit-games/financial-island/server/internal/engine"
	"github.com/finlit-games/financial-island/server/internal/events"
	"github.com/finlit-games/financial-island/server/internal/infra/storage"
	"github.com/finlit-games/financial-island/server/internal/network"
	"github.com/finlit-games/financial-island/server/internal/platform/config"
	"github.com/finlit-games/financial-island/server/internal/platform/logger"
	"github.com/finlit-games/financial-island/server/internal/platform/metrics"
)

// transcriptPersisterAdapter translates engine events to storage rows.
type transcriptPersisterAdapter struct {
	repo *storage.TranscriptRepository
}

func (a *transcriptPersisterAdapter) Append(event events.GameEvent) error {
	payloadBytes, _ := json.Marshal(event.Payload)
	var payloadMap map[string]interface{}
	json.Unmarshal(payloadBytes, &payloadMap)

	row := storage.TranscriptEvent{
		ID:        event.ID,
		SessionID: event.SessionID,
		Timestamp: event.Timestamp,
		EventType: string(event.Type),
		Verb:      event.Verb,
		TargetID:  event.TargetID,
		Narrative: event.Narrative,
		Payload:   payloadMap,
		GameDay:   event.GameDay,
	}
	err := a.repo.Append(context.Background(), row)
	if err != nil {
		metrics.EventWriteErrors.Inc()
	}
	return err
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer appLogger.Sync()

	var persister events.Persister
	if cfg.DBPath != "" {
		appLogger.Info("Initializing SQLite transcript at " + cfg.DBPath)
		db, err := storage.InitSQLite(cfg.DBPath)
		if err != nil {
			appLogger.Error("Failed to initialize SQLite: " + err.Error())
			os.Exit(1)
		}
		defer db.Close()
		persister = &transcriptPersisterAdapter{repo: storage.NewTranscriptRepository(db)}
	}

	appLogger.Info("Bootstrapping session transcript...")
	eventLog := events.NewEventLog(persister)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	appLogger.Info("Bootstrapping engine...")
	session := engine.NewSession(content.Island(), eventLog, appLogger, seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.TickInterval > 0 {
		ticker := engine.NewTicker(session, cfg.TickInterval, appLogger)
		go ticker.Start(ctx)
		defer ticker.Stop()
	}

	appLogger.Info("Bootstrapping WebSocket hub...")
	hub := network.NewHub(session, appLogger)
	go hub.Run(ctx)
	hub.StartEventPoller(ctx, eventLog)

	mux := http.NewServeMux()

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r, appLogger)
	})

	mux.Handle("/metrics", metrics.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/api/snapshot", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(session.Snapshot())
	})

	mux.HandleFunc("/api/action", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var action network.PlayerAction
		if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}
		if err := network.Dispatch(session, action); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(session.Snapshot())
	})

	server := &http.Server{Addr: cfg.Addr, Handler: mux}
	go func() {
		appLogger.Info("HTTP API & WS server listening on " + cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	appLogger.Info("Financial Island is open. Press Ctrl+C to exit.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow cross-origin requests from the dev frontend
	},
}

// serveWs handles websocket requests from the peer.
func serveWs(hub *network.Hub, w http.ResponseWriter, r *http.Request, log *logger.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Failed to upgrade websocket connection")
		return
	}

	client := network.NewClient(hub, conn)
	client.Register()

	go client.WritePump()
	go client.ReadPump()
}
