package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperr "carelink/internal/errors"
	"carelink/internal/model"
	"carelink/internal/repository"
)

// newTestStore opens a fresh in-memory sqlite database with the full schema.
func newTestStore(t *testing.T) repository.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Caregiver{},
		&model.Member{},
		&model.Address{},
		&model.Job{},
		&model.JobApplication{},
		&model.Appointment{},
	))
	return repository.NewStore(db)
}

func createUser(t *testing.T, svc UserService, email string) *model.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), &model.User{
		Email:     email,
		GivenName: "Test",
		Surname:   "User",
		City:      "Astana",
		Password:  "pw",
	})
	require.NoError(t, err)
	return user
}

func TestKeyAllocation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	users := NewUserService(store)

	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		user := createUser(t, users, email)
		assert.Equal(t, uint(i+1), user.UserID)
	}

	// Deleting a row in the middle must not make its key reusable.
	require.NoError(t, users.DeleteUser(ctx, 2))
	user := createUser(t, users, "d@x.com")
	assert.Equal(t, uint(4), user.UserID)
}

func TestDeleteThenRead(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	users := NewUserService(store)

	user := createUser(t, users, "gone@x.com")
	require.NoError(t, users.DeleteUser(ctx, user.UserID))

	_, err := users.GetUser(ctx, user.UserID)
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	_, err = users.UpdateUser(ctx, user.UserID, &model.User{Email: "gone@x.com"})
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	err = users.DeleteUser(ctx, user.UserID)
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestMarketplaceFlow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	users := NewUserService(store)
	caregivers := NewCaregiverService(store)
	members := NewMemberService(store)
	jobs := NewJobService(store)
	applications := NewJobApplicationService(store)

	memberUser := createUser(t, users, "a@x.com")
	require.Equal(t, uint(1), memberUser.UserID)

	_, err := members.CreateMember(ctx, &model.Member{
		MemberUserID:         memberUser.UserID,
		HouseRules:           "no pets",
		DependentDescription: "father, 82",
	})
	require.NoError(t, err)

	job, err := jobs.CreateJob(ctx, &model.Job{
		MemberUserID:           memberUser.UserID,
		RequiredCaregivingType: "elder_care",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), job.JobID)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), job.DatePosted.Format("2006-01-02"))

	caregiverUser := createUser(t, users, "b@x.com")
	require.Equal(t, uint(2), caregiverUser.UserID)
	_, err = caregivers.CreateCaregiver(ctx, &model.Caregiver{
		CaregiverUserID: caregiverUser.UserID,
		CaregivingType:  "elder_care",
	})
	require.NoError(t, err)

	_, err = applications.CreateJobApplication(ctx, &model.JobApplication{
		CaregiverUserID: caregiverUser.UserID,
		JobID:           job.JobID,
	})
	require.NoError(t, err)

	listed, err := applications.ListJobApplications(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	// A second identical application must be rejected without changing the row count.
	_, err = applications.CreateJobApplication(ctx, &model.JobApplication{
		CaregiverUserID: caregiverUser.UserID,
		JobID:           job.JobID,
	})
	assert.ErrorIs(t, err, apperr.ErrJobApplicationExists)
	listed, err = applications.ListJobApplications(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestAddressRequiresMember(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	addresses := NewAddressService(store)

	_, err := addresses.CreateAddress(ctx, &model.Address{
		MemberUserID: 99,
		HouseNumber:  "12",
		Street:       "Main",
		Town:         "Astana",
	})
	assert.ErrorIs(t, err, apperr.ErrMemberMissing)

	listed, err := addresses.ListAddresses(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestMemberDeleteCascadesAddress(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	users := NewUserService(store)
	members := NewMemberService(store)
	addresses := NewAddressService(store)

	user := createUser(t, users, "m@x.com")
	_, err := members.CreateMember(ctx, &model.Member{
		MemberUserID:         user.UserID,
		HouseRules:           "quiet after 22:00",
		DependentDescription: "daughter, 4",
	})
	require.NoError(t, err)
	_, err = addresses.CreateAddress(ctx, &model.Address{
		MemberUserID: user.UserID,
		HouseNumber:  "7",
		Street:       "Abay Ave",
		Town:         "Almaty",
	})
	require.NoError(t, err)

	require.NoError(t, members.DeleteMember(ctx, user.UserID))

	_, err = addresses.GetAddress(ctx, user.UserID)
	assert.ErrorIs(t, err, apperr.ErrAddressNotFound)
}

func TestUserDeleteRestrictedByProfile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	users := NewUserService(store)
	caregivers := NewCaregiverService(store)

	user := createUser(t, users, "c@x.com")
	_, err := caregivers.CreateCaregiver(ctx, &model.Caregiver{
		CaregiverUserID: user.UserID,
		CaregivingType:  "babysitter",
	})
	require.NoError(t, err)

	err = users.DeleteUser(ctx, user.UserID)
	assert.ErrorIs(t, err, apperr.ErrUserHasProfiles)

	// Still present after the rejected delete.
	_, err = users.GetUser(ctx, user.UserID)
	assert.NoError(t, err)
}
