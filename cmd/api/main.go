package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/tracklight/timesheet-backend-go/internal/config"
	appHTTP "github.com/tracklight/timesheet-backend-go/internal/handler/http"
	"github.com/tracklight/timesheet-backend-go/internal/pkg/database"
	"github.com/tracklight/timesheet-backend-go/internal/pkg/genai"
	"github.com/tracklight/timesheet-backend-go/internal/pkg/jwt"
	"github.com/tracklight/timesheet-backend-go/internal/repository/memory"
	"github.com/tracklight/timesheet-backend-go/internal/repository/postgresql"
	"github.com/tracklight/timesheet-backend-go/internal/repository/sqlitestore"
	authService "github.com/tracklight/timesheet-backend-go/internal/service/auth"
	catalogService "github.com/tracklight/timesheet-backend-go/internal/service/catalog"
	"github.com/tracklight/timesheet-backend-go/internal/service/directory"
	insightService "github.com/tracklight/timesheet-backend-go/internal/service/insight"
	timesheetService "github.com/tracklight/timesheet-backend-go/internal/service/timesheet"
	"github.com/tracklight/timesheet-backend-go/internal/snapshot"
	"github.com/tracklight/timesheet-backend-go/internal/workspace"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	var store snapshot.Store
	switch cfg.Snapshot.Store {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		pgStore := postgresql.NewSnapshotStore(db)
		if err := pgStore.Migrate(ctx); err != nil {
			log.Fatal("Failed to run snapshot migration: ", err)
		}
		store = pgStore
	case "sqlite":
		sqliteStore, err := sqlitestore.Open(cfg.Snapshot.SQLitePath)
		if err != nil {
			log.Fatal("Failed to open sqlite store: ", err)
		}
		store = sqliteStore
	case "memory":
		store = memory.NewSnapshotStore()
	default:
		log.Fatal("Unsupported snapshot store: ", cfg.Snapshot.Store)
	}

	ws, err := workspace.Open(ctx, store)
	if err != nil {
		log.Fatal("Failed to open workspace: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	genaiClient := genai.NewClient(cfg.GenAI)

	authSvc := authService.NewService(ws, jwtService)
	timesheetSvc := timesheetService.NewService(ws)
	directorySvc := directory.NewService(ws)
	catalogSvc := catalogService.NewService(ws)
	insightSvc := insightService.NewService(genaiClient)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	approvalHandler := appHTTP.NewApprovalHandler(timesheetSvc, ws)
	adminHandler := appHTTP.NewAdminHandler(directorySvc, catalogSvc, timesheetSvc, ws)
	insightHandler := appHTTP.NewInsightHandler(insightSvc, ws)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		timesheetHandler,
		approvalHandler,
		adminHandler,
		insightHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
