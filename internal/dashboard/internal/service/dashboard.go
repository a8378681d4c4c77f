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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/dashboard/internal/domain"
	"github.com/ecodeclub/hirebook/internal/job"
	"github.com/ecodeclub/hirebook/internal/submission"
	"github.com/ecodeclub/hirebook/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// recentLimit 首页只展示最近的几条申请
const recentLimit = 5

//go:generate mockgen -source=./dashboard.go -package=svcmocks -destination=mocks/dashboard.mock.go Service
type Service interface {
	Candidate(ctx context.Context, uid int64) (domain.CandidateDashboard, error)
	Company(ctx context.Context, companyId int64) (domain.CompanyDashboard, error)
	Admin(ctx context.Context) (domain.AdminDashboard, error)
}

type dashboardService struct {
	userSvc       user.Service
	jobSvc        job.Service
	submissionSvc submission.Service
	logger        *elog.Component
}

func NewService(userSvc user.Service, jobSvc job.Service, submissionSvc submission.Service) Service {
	return &dashboardService{
		userSvc:       userSvc,
		jobSvc:        jobSvc,
		submissionSvc: submissionSvc,
		logger:        elog.DefaultLogger,
	}
}

func (s *dashboardService) Candidate(ctx context.Context, uid int64) (domain.CandidateDashboard, error) {
	var (
		eg     errgroup.Group
		counts map[submission.Status]int64
		subs   []submission.Submission
	)
	eg.Go(func() error {
		var err error
		counts, err = s.submissionSvc.CountByStatus(ctx, 0, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		subs, _, err = s.submissionSvc.ListByCandidate(ctx, uid, 0, recentLimit)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.CandidateDashboard{}, err
	}
	recent, err := s.applications(ctx, subs)
	if err != nil {
		return domain.CandidateDashboard{}, err
	}
	return domain.CandidateDashboard{
		InProgress: counts[submission.StatusInProgress],
		Submitted:  counts[submission.StatusSubmitted],
		Reviewed:   counts[submission.StatusReviewed],
		Recent:     recent,
	}, nil
}

// applications 补上职位标题，职位已经被删除的话标题留空
func (s *dashboardService) applications(ctx context.Context, subs []submission.Submission) ([]domain.Application, error) {
	titles := make([]string, len(subs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, sub := range subs {
		eg.Go(func() error {
			j, err := s.jobSvc.Detail(ctx, sub.JobId)
			switch {
			case errors.Is(err, job.ErrJobNotFound):
				s.logger.Warn("申请对应的职位已经不存在",
					elog.Int64("sid", sub.Id),
					elog.Int64("jobId", sub.JobId))
				return nil
			case err != nil:
				return err
			}
			titles[i] = j.Title
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return slice.Map(subs, func(idx int, src submission.Submission) domain.Application {
		return domain.Application{
			SubmissionId: src.Id,
			JobId:        src.JobId,
			JobTitle:     titles[idx],
			Status:       src.Status.String(),
			Decision:     src.EffectiveDecision().String(),
			SubmittedAt:  src.SubmittedAt,
			Utime:        src.Utime,
		}
	}), nil
}

func (s *dashboardService) Company(ctx context.Context, companyId int64) (domain.CompanyDashboard, error) {
	var (
		eg      errgroup.Group
		jobs    map[job.Status]int64
		subs    map[submission.Status]int64
		pending int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.jobSvc.CountByStatus(ctx, companyId)
		return err
	})
	eg.Go(func() error {
		var err error
		subs, err = s.submissionSvc.CountByStatus(ctx, companyId, 0)
		return err
	})
	eg.Go(func() error {
		var err error
		pending, err = s.submissionSvc.CountPending(ctx, companyId)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.CompanyDashboard{}, err
	}
	return domain.CompanyDashboard{
		Jobs: stringKeys(jobs),
		// 公司看不到还在作答中的
		TotalSubmissions: subs[submission.StatusSubmitted] + subs[submission.StatusReviewed],
		PendingReviews:   pending,
	}, nil
}

func (s *dashboardService) Admin(ctx context.Context) (domain.AdminDashboard, error) {
	var (
		eg    errgroup.Group
		users map[user.Role]int64
		jobs  map[job.Status]int64
		subs  map[submission.Status]int64
	)
	eg.Go(func() error {
		var err error
		users, err = s.userSvc.CountByRole(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		jobs, err = s.jobSvc.CountByStatus(ctx, 0)
		return err
	})
	eg.Go(func() error {
		var err error
		subs, err = s.submissionSvc.CountByStatus(ctx, 0, 0)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.AdminDashboard{}, err
	}
	jobCounts := stringKeys(jobs)
	return domain.AdminDashboard{
		Users:       stringKeys(users),
		TotalJobs:   domain.Sum(jobCounts),
		ActiveJobs:  jobs[job.StatusActive],
		Submissions: stringKeys(subs),
	}, nil
}

func stringKeys[K ~string](counts map[K]int64) map[string]int64 {
	res := make(map[string]int64, len(counts))
	for k, v := range counts {
		res[string(k)] = v
	}
	return res
}
