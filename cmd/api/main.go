package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/clinic-api/internal/config"
	"github.com/jwalitptl/clinic-api/internal/handler"
	appointmentHandler "github.com/jwalitptl/clinic-api/internal/handler/appointment"
	authHandler "github.com/jwalitptl/clinic-api/internal/handler/auth"
	doctorHandler "github.com/jwalitptl/clinic-api/internal/handler/doctor"
	medicineHandler "github.com/jwalitptl/clinic-api/internal/handler/medicine"
	patientHandler "github.com/jwalitptl/clinic-api/internal/handler/patient"
	"github.com/jwalitptl/clinic-api/internal/repository/postgres"
	"github.com/jwalitptl/clinic-api/internal/router"
	authService "github.com/jwalitptl/clinic-api/internal/service/auth"
	bookingService "github.com/jwalitptl/clinic-api/internal/service/booking"
	doctorService "github.com/jwalitptl/clinic-api/internal/service/doctor"
	medicineService "github.com/jwalitptl/clinic-api/internal/service/medicine"
	patientService "github.com/jwalitptl/clinic-api/internal/service/patient"
	"github.com/jwalitptl/clinic-api/pkg/logger"
	"github.com/jwalitptl/clinic-api/pkg/security"
	"github.com/jwalitptl/clinic-api/pkg/validator"
)

func main() {
	lgr := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		lgr.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		lgr.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(db); err != nil {
		lgr.Fatal(err, "failed to bootstrap schema")
	}

	if err := validator.RegisterCustomRules(); err != nil {
		lgr.Fatal(err, "failed to register validation rules")
	}

	// Repositories
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	medicineRepo := postgres.NewMedicineRepository(db)
	adminRepo := postgres.NewAdminRepository(db)

	// Services
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	patientSvc := patientService.NewService(patientRepo)
	doctorSvc := doctorService.NewService(doctorRepo, time.Duration(cfg.Cache.DoctorListTTLSeconds)*time.Second)
	bookingSvc := bookingService.NewService(patientRepo, doctorRepo, appointmentRepo)
	medicineSvc := medicineService.NewService(medicineRepo)
	authSvc := authService.NewService(adminRepo, hasher)

	if err := authSvc.EnsureSeedAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password); err != nil {
		lgr.Fatal(err, "failed to seed admin credential")
	}

	// Router
	gin.SetMode(gin.ReleaseMode)
	r := router.NewRouter(
		lgr,
		handler.NewHandler(),
		appointmentHandler.NewHandler(bookingSvc),
		patientHandler.NewHandler(patientSvc),
		doctorHandler.NewHandler(doctorSvc),
		medicineHandler.NewHandler(medicineSvc),
		authHandler.NewHandler(authSvc),
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		lgr.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lgr.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	lgr.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lgr.Fatal(err, "server forced to shutdown")
	}

	lgr.Info("server exited properly")
}
