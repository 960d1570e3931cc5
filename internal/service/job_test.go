package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/api/dto"
	ierr "github.com/siteledger/siteledger/internal/errors"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type JobServiceSuite struct {
	testutil.BaseServiceTestSuite
	service JobService
}

func TestJobService(t *testing.T) {
	suite.Run(t, new(JobServiceSuite))
}

func (s *JobServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewJobService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *JobServiceSuite) TestCreateJob() {
	testCases := []struct {
		name          string
		request       *dto.CreateJobRequest
		expectedError bool
		verify        func(resp *dto.JobResponse)
	}{
		{
			name: "successful_creation",
			request: &dto.CreateJobRequest{
				Name:           "Riverside Medical Office",
				ClientID:       "client_1",
				Address:        "400 River Rd",
				ContractAmount: "1250000.50",
				StartDate:      lo.ToPtr("2026-03-01"),
			},
			verify: func(resp *dto.JobResponse) {
				s.Equal("Riverside Medical Office", resp.Name)
				s.Equal("1250000.5", resp.ContractAmount.String())
				s.Equal(types.JobStatusPlanning, resp.JobStatus)
				s.Equal("$1,250,000.50", resp.ContractAmountDisplay)
				s.Equal("Mar 1, 2026", resp.StartDateDisplay)
				s.NotNil(resp.StartDate)
				s.NotEmpty(resp.Number)
				s.Equal(1, resp.Version)
			},
		},
		{
			name: "empty_amount_means_unset_not_zero_string",
			request: &dto.CreateJobRequest{
				Name:           "No Contract Yet",
				ContractAmount: "",
			},
			verify: func(resp *dto.JobResponse) {
				s.True(resp.ContractAmount.IsZero())
				s.Nil(resp.StartDate)
				s.Equal("Not specified", resp.StartDateDisplay)
			},
		},
		{
			name: "missing_name",
			request: &dto.CreateJobRequest{
				ContractAmount: "1000",
			},
			expectedError: true,
		},
		{
			name: "malformed_amount",
			request: &dto.CreateJobRequest{
				Name:           "Bad Amount",
				ContractAmount: "12,000",
			},
			expectedError: true,
		},
		{
			name: "invalid_status",
			request: &dto.CreateJobRequest{
				Name:      "Bad Status",
				JobStatus: types.JobStatus("demolished"),
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.CreateJob(s.GetContext(), tc.request)
			if tc.expectedError {
				s.Error(err)
				s.True(ierr.IsValidation(err))
				return
			}
			s.NoError(err)
			tc.verify(resp)
		})
	}
}

func (s *JobServiceSuite) TestGetJob() {
	created, err := s.service.CreateJob(s.GetContext(), &dto.CreateJobRequest{Name: "Lookup"})
	s.NoError(err)

	got, err := s.service.GetJob(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(created.ID, got.ID)

	_, err = s.service.GetJob(s.GetContext(), "job_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *JobServiceSuite) TestListJobsFiltersByStatus() {
	_, err := s.service.CreateJob(s.GetContext(), &dto.CreateJobRequest{
		Name:      "Active One",
		JobStatus: types.JobStatusActive,
	})
	s.NoError(err)
	_, err = s.service.CreateJob(s.GetContext(), &dto.CreateJobRequest{
		Name: "Still Planning",
	})
	s.NoError(err)

	resp, err := s.service.ListJobs(s.GetContext(), &types.JobFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		Statuses:    []types.JobStatus{types.JobStatusActive},
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Active One", resp.Items[0].Name)
	s.Equal(1, resp.Pagination.Total)
}

func (s *JobServiceSuite) TestEmptyContractAmountOnUpdateKeepsStoredValue() {
	created, err := s.service.CreateJob(s.GetContext(), &dto.CreateJobRequest{
		Name:           "Fixed Price Job",
		ContractAmount: "480000",
	})
	s.NoError(err)

	// The amount column is non-nullable: an empty submission changes
	// nothing rather than zeroing the contract.
	updated, err := s.service.UpdateJob(s.GetContext(), created.ID, &dto.UpdateJobRequest{
		ContractAmount: lo.ToPtr(""),
		Version:        1,
	})
	s.NoError(err)
	s.Equal("480000", updated.ContractAmount.String())

	got, err := s.service.GetJob(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("480000", got.ContractAmount.String())
}

func (s *JobServiceSuite) TestUpdateJobVersionConflict() {
	created, err := s.service.CreateJob(s.GetContext(), &dto.CreateJobRequest{Name: "Contended"})
	s.NoError(err)

	updated, err := s.service.UpdateJob(s.GetContext(), created.ID, &dto.UpdateJobRequest{
		Name:    lo.ToPtr("Contended v2"),
		Version: 1,
	})
	s.NoError(err)
	s.Equal(2, updated.Version)
	s.Equal("Contended v2", updated.Name)

	// A second writer still holding version 1 must be rejected.
	_, err = s.service.UpdateJob(s.GetContext(), created.ID, &dto.UpdateJobRequest{
		Name:    lo.ToPtr("Lost Update"),
		Version: 1,
	})
	s.Error(err)
	s.True(ierr.IsVersionConflict(err))

	got, err := s.service.GetJob(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Contended v2", got.Name)
}

func (s *JobServiceSuite) TestArchiveJobHidesRecord() {
	created, err := s.service.CreateJob(s.GetContext(), &dto.CreateJobRequest{Name: "Closed Out"})
	s.NoError(err)

	s.NoError(s.service.ArchiveJob(s.GetContext(), created.ID))

	_, err = s.service.GetJob(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	resp, err := s.service.ListJobs(s.GetContext(), types.NewDefaultJobFilter())
	s.NoError(err)
	s.Empty(resp.Items)

	// Archiving twice is a not-found, the row is already invisible.
	err = s.service.ArchiveJob(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *JobServiceSuite) TestTenantIsolation() {
	created, err := s.service.CreateJob(s.GetContext(), &dto.CreateJobRequest{Name: "Ours"})
	s.NoError(err)

	otherTenant := testutil.SetupContextForTenant("tenant_other", "user_other")

	_, err = s.service.GetJob(otherTenant, created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	resp, err := s.service.ListJobs(otherTenant, types.NewDefaultJobFilter())
	s.NoError(err)
	s.Empty(resp.Items)

	err = s.service.ArchiveJob(otherTenant, created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
