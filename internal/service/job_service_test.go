package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperr "carelink/internal/errors"
	"carelink/internal/model"
	"carelink/internal/repository"
)

func TestJobService_CreateJob(t *testing.T) {
	t.Run("zero posting date defaults to today", func(t *testing.T) {
		mockMembers := new(MockMemberRepository)
		mockJobs := new(MockJobRepository)
		mockMembers.On("FindByID", mock.Anything, uint(1)).Return(&model.Member{MemberUserID: 1}, nil)
		mockJobs.On("MaxID", mock.Anything).Return(uint(0), nil)
		mockJobs.On("Create", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)
		svc := NewJobService(&fakeStore{repos: repository.Repositories{
			Members: mockMembers,
			Jobs:    mockJobs,
		}})

		job, err := svc.CreateJob(context.Background(), &model.Job{
			MemberUserID:           1,
			RequiredCaregivingType: "babysitter",
			OtherRequirements:      "non-smoker",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), job.JobID)
		assert.Equal(t, today(), job.DatePosted)
	})

	t.Run("posting member does not exist", func(t *testing.T) {
		mockMembers := new(MockMemberRepository)
		mockJobs := new(MockJobRepository)
		mockMembers.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
		svc := NewJobService(&fakeStore{repos: repository.Repositories{
			Members: mockMembers,
			Jobs:    mockJobs,
		}})

		_, err := svc.CreateJob(context.Background(), &model.Job{MemberUserID: 7})

		assert.ErrorIs(t, err, apperr.ErrMemberMissing)
		mockJobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestJobService_UpdateJob(t *testing.T) {
	t.Run("posting date is preserved across updates", func(t *testing.T) {
		posted := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		mockMembers := new(MockMemberRepository)
		mockJobs := new(MockJobRepository)
		mockJobs.On("FindByID", mock.Anything, uint(5)).Return(&model.Job{
			JobID: 5, MemberUserID: 1, DatePosted: posted,
		}, nil)
		mockMembers.On("FindByID", mock.Anything, uint(1)).Return(&model.Member{MemberUserID: 1}, nil)
		mockJobs.On("Save", mock.Anything, mock.AnythingOfType("*model.Job")).Return(nil)
		svc := NewJobService(&fakeStore{repos: repository.Repositories{
			Members: mockMembers,
			Jobs:    mockJobs,
		}})

		job, err := svc.UpdateJob(context.Background(), 5, &model.Job{
			MemberUserID:           1,
			RequiredCaregivingType: "elderly care",
			DatePosted:             today(),
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(5), job.JobID)
		assert.Equal(t, posted, job.DatePosted)
	})

	t.Run("missing job", func(t *testing.T) {
		mockMembers := new(MockMemberRepository)
		mockJobs := new(MockJobRepository)
		mockJobs.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
		svc := NewJobService(&fakeStore{repos: repository.Repositories{
			Members: mockMembers,
			Jobs:    mockJobs,
		}})

		_, err := svc.UpdateJob(context.Background(), 5, &model.Job{MemberUserID: 1})

		assert.ErrorIs(t, err, apperr.ErrJobNotFound)
	})
}

func TestJobService_DeleteJob(t *testing.T) {
	t.Run("applications block deletion", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockApplications := new(MockJobApplicationRepository)
		mockJobs.On("FindByID", mock.Anything, uint(5)).Return(&model.Job{JobID: 5}, nil)
		mockApplications.On("CountByJob", mock.Anything, uint(5)).Return(int64(2), nil)
		svc := NewJobService(&fakeStore{repos: repository.Repositories{
			Jobs:            mockJobs,
			JobApplications: mockApplications,
		}})

		err := svc.DeleteJob(context.Background(), 5)

		assert.ErrorIs(t, err, apperr.ErrJobHasApplications)
		mockJobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unreferenced job is removed", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		mockApplications := new(MockJobApplicationRepository)
		mockJobs.On("FindByID", mock.Anything, uint(5)).Return(&model.Job{JobID: 5}, nil)
		mockApplications.On("CountByJob", mock.Anything, uint(5)).Return(int64(0), nil)
		mockJobs.On("Delete", mock.Anything, uint(5)).Return(nil)
		svc := NewJobService(&fakeStore{repos: repository.Repositories{
			Jobs:            mockJobs,
			JobApplications: mockApplications,
		}})

		assert.NoError(t, svc.DeleteJob(context.Background(), 5))
		mockJobs.AssertExpectations(t)
	})
}
