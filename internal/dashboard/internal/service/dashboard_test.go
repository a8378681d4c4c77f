// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/hirebook/internal/dashboard/internal/domain"
	"github.com/ecodeclub/hirebook/internal/job"
	jobmocks "github.com/ecodeclub/hirebook/internal/job/mocks"
	"github.com/ecodeclub/hirebook/internal/submission"
	submissionmocks "github.com/ecodeclub/hirebook/internal/submission/mocks"
	"github.com/ecodeclub/hirebook/internal/user"
	usermocks "github.com/ecodeclub/hirebook/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	userSvc       *usermocks.MockService
	jobSvc        *jobmocks.MockService
	submissionSvc *submissionmocks.MockService
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		userSvc:       usermocks.NewMockService(ctrl),
		jobSvc:        jobmocks.NewMockService(ctrl),
		submissionSvc: submissionmocks.NewMockService(ctrl),
	}
}

func TestDashboardService_Candidate(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantRes domain.CandidateDashboard
		wantErr error
	}{
		{
			name: "统计和最近申请",
			mock: func(m mocks) {
				m.submissionSvc.EXPECT().CountByStatus(gomock.Any(), int64(0), int64(7)).
					Return(map[submission.Status]int64{
						submission.StatusInProgress: 1,
						submission.StatusSubmitted:  2,
					}, nil)
				m.submissionSvc.EXPECT().ListByCandidate(gomock.Any(), int64(7), 0, recentLimit).
					Return([]submission.Submission{
						{Id: 1, JobId: 11, Status: submission.StatusSubmitted, SubmittedAt: 100, Utime: 100},
						{Id: 2, JobId: 12, Status: submission.StatusInProgress, Utime: 90},
					}, int64(2), nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(11)).Return(job.Job{Id: 11, Title: "后端工程师"}, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(12)).Return(job.Job{}, job.ErrJobNotFound)
			},
			wantRes: domain.CandidateDashboard{
				InProgress: 1,
				Submitted:  2,
				Recent: []domain.Application{
					{SubmissionId: 1, JobId: 11, JobTitle: "后端工程师", Status: "submitted", Decision: "pending", SubmittedAt: 100, Utime: 100},
					{SubmissionId: 2, JobId: 12, Status: "in_progress", Decision: "pending", Utime: 90},
				},
			},
		},
		{
			name: "统计失败",
			mock: func(m mocks) {
				m.submissionSvc.EXPECT().CountByStatus(gomock.Any(), int64(0), int64(7)).
					Return(nil, errors.New("mock db error"))
				m.submissionSvc.EXPECT().ListByCandidate(gomock.Any(), int64(7), 0, recentLimit).
					Return(nil, int64(0), nil)
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			svc := NewService(m.userSvc, m.jobSvc, m.submissionSvc)
			res, err := svc.Candidate(context.Background(), 7)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestDashboardService_Company(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.jobSvc.EXPECT().CountByStatus(gomock.Any(), int64(3)).
		Return(map[job.Status]int64{job.StatusActive: 2, job.StatusDraft: 1}, nil)
	m.submissionSvc.EXPECT().CountByStatus(gomock.Any(), int64(3), int64(0)).
		Return(map[submission.Status]int64{
			submission.StatusInProgress: 4,
			submission.StatusSubmitted:  3,
			submission.StatusReviewed:   5,
		}, nil)
	m.submissionSvc.EXPECT().CountPending(gomock.Any(), int64(3)).Return(int64(2), nil)

	res, err := NewService(m.userSvc, m.jobSvc, m.submissionSvc).Company(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyDashboard{
		Jobs:             map[string]int64{"active": 2, "draft": 1},
		TotalSubmissions: 8,
		PendingReviews:   2,
	}, res)
}

func TestDashboardService_Admin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.userSvc.EXPECT().CountByRole(gomock.Any()).
		Return(map[user.Role]int64{user.RoleCompany: 2, user.RoleCandidate: 10, user.RoleAdmin: 1}, nil)
	m.jobSvc.EXPECT().CountByStatus(gomock.Any(), int64(0)).
		Return(map[job.Status]int64{job.StatusActive: 3, job.StatusClosed: 2}, nil)
	m.submissionSvc.EXPECT().CountByStatus(gomock.Any(), int64(0), int64(0)).
		Return(map[submission.Status]int64{submission.StatusReviewed: 6}, nil)

	res, err := NewService(m.userSvc, m.jobSvc, m.submissionSvc).Admin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.AdminDashboard{
		Users:       map[string]int64{"company": 2, "candidate": 10, "admin": 1},
		TotalJobs:   5,
		ActiveJobs:  3,
		Submissions: map[string]int64{"reviewed": 6},
	}, res)
}
