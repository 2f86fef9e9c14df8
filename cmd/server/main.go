package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"carelink/internal/config"
	"carelink/internal/db"
	"carelink/internal/handler"
	"carelink/internal/logger"
	"carelink/internal/model"
	"carelink/internal/repository"
	"carelink/internal/router"
	"carelink/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Migration order follows the FK chain: parents before children.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Caregiver{},
		&model.Member{},
		&model.Address{},
		&model.Job{},
		&model.JobApplication{},
		&model.Appointment{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	store := repository.NewStore(gormDB)

	userService := service.NewUserService(store)
	caregiverService := service.NewCaregiverService(store)
	memberService := service.NewMemberService(store)
	addressService := service.NewAddressService(store)
	jobService := service.NewJobService(store)
	jobApplicationService := service.NewJobApplicationService(store)
	appointmentService := service.NewAppointmentService(store)

	router.Register(
		e,
		handler.NewUserHandler(userService),
		handler.NewCaregiverHandler(caregiverService),
		handler.NewMemberHandler(memberService),
		handler.NewAddressHandler(addressService),
		handler.NewJobHandler(jobService),
		handler.NewJobApplicationHandler(jobApplicationService),
		handler.NewAppointmentHandler(appointmentService),
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
