package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fardannozami/greencity-bot/internal/app/progress"
	"github.com/fardannozami/greencity-bot/internal/app/query"
	"github.com/fardannozami/greencity-bot/internal/app/usecase"
	"github.com/fardannozami/greencity-bot/internal/catalog"
	"github.com/fardannozami/greencity-bot/internal/config"
	"github.com/fardannozami/greencity-bot/internal/infra/sqlite"
	"github.com/fardannozami/greencity-bot/internal/infra/wa"

	walog "go.mau.fi/whatsmeow/util/log"
	_ "modernc.org/sqlite"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Logger
	logger := walog.Stdout("GreenCity", cfg.LogLevel, true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Database & Repository
	// Enable WAL mode and busy timeout to avoid "database is locked" errors
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.SQLitePath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repo := sqlite.NewProgressRepository(db)
	if err := repo.InitTable(ctx); err != nil {
		log.Fatalf("Failed to init table: %v", err)
	}

	// 4. Engine: one shared store for every view
	cat := catalog.Default()
	store := progress.NewStore(repo, cat, logger.Sub("Progress")).WithDefaultUsername(cfg.DefaultUsername)
	state := store.Load(ctx)
	logger.Infof("Loaded progress for %s: %d points, %d challenges", state.Username, state.Points, state.CompletedCount())

	facade := query.NewFacade(cat, store, cfg.GoalPoints)

	// 5. Use Cases
	handleMessageUC := usecase.NewHandleMessageUsecase(
		usecase.NewCompleteChallengeUsecase(facade),
		usecase.NewListChallengesUsecase(facade),
		usecase.NewRenameUserUsecase(facade),
		usecase.NewGetProfileUsecase(facade),
		usecase.NewGetBadgesUsecase(facade),
		usecase.NewSaveProgressUsecase(facade),
		usecase.NewGetHomeUsecase(facade),
	)

	// 6. WhatsApp Service
	waService := wa.NewService(cfg.SQLitePath, wa.ReplyPacing{
		MinDelay:   time.Duration(cfg.ReplyDelayMinMs) * time.Millisecond,
		MaxDelay:   time.Duration(cfg.ReplyDelayMaxMs) * time.Millisecond,
		ShowTyping: cfg.ShowTyping,
	}, logger.Sub("WhatsApp"))

	waService.SetMessageHandler(func(ctx context.Context, msg wa.IncomingMessage) (string, error) {
		if !acceptSender(cfg.OwnerID, msg) {
			return "", nil
		}
		logger.Debugf("Message from %s (%s): %s", msg.PushName, msg.SenderID, msg.Text)
		return handleMessageUC.Execute(ctx, msg.Text)
	})

	// 7. Initialize Client (DB, Device, etc) - DO NOT CONNECT YET
	if err := waService.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize WhatsApp service: %v", err)
	}

	// 8. Connect / Login Logic
	switch {
	case waService.IsLoggedIn():
		if err := waService.Connect(); err != nil {
			log.Fatalf("Failed to connect: %v", err)
		}
		logger.Infof("Client is already logged in.")
	case cfg.BotPhone != "":
		if err := waService.Connect(); err != nil {
			log.Fatalf("Failed to connect for pairing: %v", err)
		}
		code, err := waService.Pair(ctx, cfg.BotPhone)
		if err != nil {
			logger.Errorf("Failed to generate pair code: %v", err)
		} else {
			logger.Infof("PAIR CODE: %s (Linked Devices > Link with phone number)", code)
		}
	default:
		logger.Infof("Not logged in. BOT_PHONE not set. Printing QR...")
		if err := waService.PrintQR(ctx); err != nil {
			log.Fatalf("QR login failed: %v", err)
		}
	}

	logger.Infof("Bot is running... Press Ctrl+C to exit.")

	// 9. Wait for OS Signal
	<-ctx.Done()

	logger.Infof("Shutting down...")
	waService.Disconnect()
}

// acceptSender keeps the bot single-user: only the configured owner, or any
// direct chat when no owner is configured.
func acceptSender(ownerID string, msg wa.IncomingMessage) bool {
	if ownerID != "" {
		return msg.SenderID == ownerID
	}
	return !msg.IsGroup
}
