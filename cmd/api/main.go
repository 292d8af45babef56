package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/crosslog/dispatch-backend-go/internal/config"
	appHTTP "github.com/crosslog/dispatch-backend-go/internal/handler/http"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/cron"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/database"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/jwt"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/sse"
	"github.com/crosslog/dispatch-backend-go/internal/repository/postgresql"
	catalogService "github.com/crosslog/dispatch-backend-go/internal/service/catalog"
	documentService "github.com/crosslog/dispatch-backend-go/internal/service/document"
	dutyService "github.com/crosslog/dispatch-backend-go/internal/service/duty"
	notificationService "github.com/crosslog/dispatch-backend-go/internal/service/notification"
	rosterService "github.com/crosslog/dispatch-backend-go/internal/service/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	projectRepo := postgresql.NewProjectRepository(db)
	driverRepo := postgresql.NewDriverRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	requiredRepo := postgresql.NewRequiredRepository(db)
	confirmationRepo := postgresql.NewConfirmationRepository(db)
	shiftWindowRepo := postgresql.NewShiftWindowRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	notifSvc := notificationService.NewNotificationService(notificationRepo, hub)
	docSvc := documentService.NewDocumentService(db, documentRepo)
	catalogSvc := catalogService.NewCatalogService(projectRepo, driverRepo)
	rosterSvc := rosterService.NewRosterService(
		db,
		assignmentRepo,
		requiredRepo,
		confirmationRepo,
		projectRepo,
		docSvc,
		notifSvc,
	)
	dutySvc := dutyService.NewDutyService(shiftWindowRepo, notifSvc)

	catalogHandler := appHTTP.NewCatalogHandler(catalogSvc, catalogSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	dutyHandler := appHTTP.NewDutyHandler(dutySvc)
	documentHandler := appHTTP.NewDocumentHandler(docSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notifSvc, jwtService, hub)

	router := appHTTP.NewRouter(
		jwtService,
		catalogHandler,
		rosterHandler,
		dutyHandler,
		documentHandler,
		notificationHandler,
	)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("operational_status_sweep", cfg.Sweep.Interval, cfg.Sweep.TickTimeout, dutySvc.Sweep)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	_ = server.Close()
}
