package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/email"
	web "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/http"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/http/middleware"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage"
	academyStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/academy"
	accountStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/account"
	communityStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/community"
	userStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/communityuser"
	planStore "github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/adapters/storage/plan"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/application/orchestrators"
	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	acctStore := accountStore.NewSQLiteStore(db)
	plStore := planStore.NewSQLiteStore(db)
	stores := &web.Stores{
		AccountStore:       acctStore,
		CommunityUserStore: userStore.NewSQLiteStore(db),
		CommunityStore:     communityStore.NewSQLiteStore(db),
		PlanStore:          plStore,
		AcademyStore:       academyStore.NewSQLiteStore(db),
	}

	// Seed default admin account if no accounts exist
	seedDeps := orchestrators.CreateAccountDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed the default plan catalog on an empty plans table
	if err := orchestrators.ExecuteSeedPlans(context.Background(), plStore); err != nil {
		log.Fatalf("failed to seed plans: %v", err)
	}

	// Configure email sender
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.EmailFrom), cfg.EmailFrom, cfg.EmailReplyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.EmailFrom, cfg.EmailReplyTo)
		if cfg.IsProduction() {
			log.Println("WARNING: COMMUNITY_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set COMMUNITY_RESEND_KEY for real delivery)")
		}
	}

	// Sessions: Redis-backed when configured so tokens survive restarts,
	// in-memory otherwise.
	var sessionStore middleware.SessionStore
	if cfg.RedisURL != "" {
		redisSessions, err := middleware.NewRedisSessionStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		if err := redisSessions.Ping(context.Background()); err != nil {
			log.Fatalf("redis unreachable: %v", err)
		}
		sessionStore = redisSessions
		log.Println("Session store configured (Redis)")
	} else {
		sessionStore = middleware.NewMemorySessionStore()
		log.Println("Session store configured (in-memory — set COMMUNITY_REDIS_URL for persistence)")
	}

	staticDir := os.Getenv("COMMUNITY_STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}

	handler := web.NewMux(cfg, staticDir, stores, sessionStore)

	slog.Info("event", "event", "server_starting", "addr", cfg.Addr, "env", cfg.Env, "version", version)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
