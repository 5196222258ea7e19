package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/campushub/campus-accounts/internal/handlers"
	"github.com/campushub/campus-accounts/internal/jwt"
	"github.com/campushub/campus-accounts/internal/logger"
	"github.com/campushub/campus-accounts/internal/middlewares"
	"github.com/campushub/campus-accounts/internal/models"
	"github.com/campushub/campus-accounts/internal/repositories"
	"github.com/campushub/campus-accounts/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title campus-accounts API
// @version 1.0.0
// @description Account management service for admins, faculty and students
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpHour int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "campus")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "")
	if jwtExpHour, err = strconv.Atoi(getEnv("JWT_EXP_HOUR", "24")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, and HTTP server. It sets up routes,
// applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpHour int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "err", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		logger.Log.Errorw("migration failed", "err", err)
		return err
	}

	// Initialize JWT service
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpHour)*time.Hour)

	// Initialize repositories
	adminReadRepo := repositories.NewAdminReadRepository(db)
	adminWriteRepo := repositories.NewAdminWriteRepository(db)
	facultyReadRepo := repositories.NewFacultyReadRepository(db)
	facultyWriteRepo := repositories.NewFacultyWriteRepository(db)
	studentReadRepo := repositories.NewStudentReadRepository(db)
	studentWriteRepo := repositories.NewStudentWriteRepository(db)
	eventReadRepo := repositories.NewEventReadRepository(db)
	eventWriteRepo := repositories.NewEventWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(adminReadRepo, facultyReadRepo, studentReadRepo, tokens)
	adminService := services.NewAdminService(adminReadRepo, adminWriteRepo)
	facultyService := services.NewFacultyService(facultyReadRepo, facultyWriteRepo, studentReadRepo)
	studentService := services.NewStudentService(studentReadRepo, studentWriteRepo)
	eventService := services.NewEventService(eventReadRepo, eventWriteRepo)
	importService := services.NewImportService(studentReadRepo, studentWriteRepo, facultyReadRepo, facultyWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokens)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/admin", func(r chi.Router) {
			// Public routes
			r.Post("/create-admin", handlers.NewCreateAdminHandler(adminService))
			r.Post("/login", handlers.NewAdminLoginHandler(authService))

			// Protected routes with JWT middleware
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Get("/profile", handlers.NewAdminProfileHandler(adminService))
				r.Get("/all-admins", handlers.NewListAdminsHandler(adminService))
				r.Get("/all-faculty", handlers.NewListFacultyHandler(facultyService))
				r.Get("/all-students", handlers.NewListStudentsHandler(studentService))
				r.Post("/create-faculty", handlers.NewCreateFacultyHandler(facultyService))
				r.Post("/create-student", handlers.NewCreateStudentHandler(studentService))
				r.Put("/update-admin/{id}", handlers.NewUpdateAdminHandler(adminService))
				r.Put("/update-faculty/{id}", handlers.NewUpdateFacultyHandler(facultyService))
				r.Put("/update-student/{id}", handlers.NewUpdateStudentHandler(studentService))
				r.Put("/change-password", handlers.NewChangePasswordHandler(adminService, models.RoleAdmin, models.RoleSuperAdmin))
				r.Post("/upload-student", handlers.NewUploadStudentsHandler(importService))
				r.Post("/upload-faculty", handlers.NewUploadFacultyHandler(importService))
				r.Post("/create-event", handlers.NewCreateEventHandler(eventService))
				r.Put("/assign-coordinators", handlers.NewAssignCoordinatorsHandler(eventService))
			})
		})

		r.Route("/faculty", func(r chi.Router) {
			r.Post("/login", handlers.NewFacultyLoginHandler(authService))

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Get("/profile", handlers.NewFacultyProfileHandler(facultyService))
				r.Get("/section-students", handlers.NewSectionStudentsHandler(facultyService))
				r.Put("/change-password", handlers.NewChangePasswordHandler(facultyService, models.RoleFaculty))
			})
		})

		r.Route("/student", func(r chi.Router) {
			r.Post("/login", handlers.NewStudentLoginHandler(authService))

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Get("/profile", handlers.NewStudentProfileHandler(studentService))
				r.Put("/change-password", handlers.NewChangePasswordHandler(studentService, models.RoleStudent))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
