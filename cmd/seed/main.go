// Seeds a small demo marketplace: two users, a caregiver, a member with an
// address, one job and an application for it, and one appointment. Runs
// through the service layer so every invariant check applies.
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"carelink/internal/config"
	"carelink/internal/db"
	"carelink/internal/logger"
	"carelink/internal/model"
	"carelink/internal/repository"
	"carelink/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	ctx := context.Background()

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
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
	users := service.NewUserService(store)
	caregivers := service.NewCaregiverService(store)
	members := service.NewMemberService(store)
	addresses := service.NewAddressService(store)
	jobs := service.NewJobService(store)
	applications := service.NewJobApplicationService(store)
	appointments := service.NewAppointmentService(store)

	alice, err := users.CreateUser(ctx, &model.User{
		Email:     "alice@example.com",
		GivenName: "Alice",
		Surname:   "Nguyen",
		City:      "Astana",
		Password:  "change-me",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed user alice")
	}
	bekzat, err := users.CreateUser(ctx, &model.User{
		Email:       "bekzat@example.com",
		GivenName:   "Bekzat",
		Surname:     "Omarov",
		City:        "Astana",
		PhoneNumber: "+7 701 000 0000",
		Password:    "change-me",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed user bekzat")
	}

	if _, err := caregivers.CreateCaregiver(ctx, &model.Caregiver{
		CaregiverUserID: alice.UserID,
		Gender:          "female",
		CaregivingType:  "elder_care",
		HourlyRate:      decimal.NewNullDecimal(decimal.NewFromFloat(12.5)),
	}); err != nil {
		log.Fatal().Err(err).Msg("seed caregiver")
	}
	if _, err := members.CreateMember(ctx, &model.Member{
		MemberUserID:         bekzat.UserID,
		HouseRules:           "No smoking indoors",
		DependentDescription: "Father, 82, limited mobility",
	}); err != nil {
		log.Fatal().Err(err).Msg("seed member")
	}
	if _, err := addresses.CreateAddress(ctx, &model.Address{
		MemberUserID: bekzat.UserID,
		HouseNumber:  "12",
		Street:       "Mangilik El Ave",
		Town:         "Astana",
	}); err != nil {
		log.Fatal().Err(err).Msg("seed address")
	}

	job, err := jobs.CreateJob(ctx, &model.Job{
		MemberUserID:           bekzat.UserID,
		RequiredCaregivingType: "elder_care",
		OtherRequirements:      "Weekday mornings only",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed job")
	}
	if _, err := applications.CreateJobApplication(ctx, &model.JobApplication{
		CaregiverUserID: alice.UserID,
		JobID:           job.JobID,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed job application")
	}

	if _, err := appointments.CreateAppointment(ctx, &model.Appointment{
		CaregiverUserID: alice.UserID,
		MemberUserID:    bekzat.UserID,
		AppointmentDate: time.Now().UTC().AddDate(0, 0, 7).Truncate(24 * time.Hour),
		AppointmentTime: "09:00",
		WorkHours:       4,
		Status:          "confirmed",
	}); err != nil {
		log.Fatal().Err(err).Msg("seed appointment")
	}

	log.Info().Msg("seed complete")
}
