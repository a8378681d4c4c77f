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

	"github.com/ecodeclub/hirebook/internal/assessment"
	assessmentmocks "github.com/ecodeclub/hirebook/internal/assessment/mocks"
	"github.com/ecodeclub/hirebook/internal/job"
	jobmocks "github.com/ecodeclub/hirebook/internal/job/mocks"
	"github.com/ecodeclub/hirebook/internal/submission/internal/domain"
	"github.com/ecodeclub/hirebook/internal/submission/internal/event"
	evtmocks "github.com/ecodeclub/hirebook/internal/submission/internal/event/mocks"
	"github.com/ecodeclub/hirebook/internal/submission/internal/repository"
	cachemocks "github.com/ecodeclub/hirebook/internal/submission/internal/repository/cache/mocks"
	repomocks "github.com/ecodeclub/hirebook/internal/submission/internal/repository/mocks"
	"github.com/ecodeclub/hirebook/internal/submission/internal/service/grader"
	gradermocks "github.com/ecodeclub/hirebook/internal/submission/internal/service/grader/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	repo          *repomocks.MockSubmissionRepository
	idempotency   *cachemocks.MockIdempotencyCache
	producer      *evtmocks.MockSubmissionEventProducer
	judge         *gradermocks.MockJudge
	jobSvc        *jobmocks.MockService
	assessmentSvc *assessmentmocks.MockService
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		repo:          repomocks.NewMockSubmissionRepository(ctrl),
		idempotency:   cachemocks.NewMockIdempotencyCache(ctrl),
		producer:      evtmocks.NewMockSubmissionEventProducer(ctrl),
		judge:         gradermocks.NewMockJudge(ctrl),
		jobSvc:        jobmocks.NewMockService(ctrl),
		assessmentSvc: assessmentmocks.NewMockService(ctrl),
	}
}

func (m mocks) service() Service {
	return NewService(m.repo, m.idempotency, grader.NewGrader(m.judge),
		m.jobSvc, m.assessmentSvc, m.producer)
}

// testAssessment 一道选择题，一道编程题，一道简答题
func testAssessment() assessment.Assessment {
	return assessment.Assessment{
		Id:           100,
		JobId:        10,
		CompanyId:    1,
		PassingScore: 60,
		Sections: []assessment.Section{
			{
				Id:   1,
				Type: assessment.TypeMCQ,
				Questions: []assessment.Question{
					{
						Id: 11, SectionId: 1, Type: assessment.TypeMCQ, Points: 5,
						Options: []assessment.Option{{Text: "A", Correct: true}, {Text: "B"}},
					},
				},
			},
			{
				Id:   2,
				Type: assessment.TypeCoding,
				Questions: []assessment.Question{
					{
						Id: 21, SectionId: 2, Type: assessment.TypeCoding, Points: 10,
						TestCases: []assessment.TestCase{
							{Input: "1", ExpectedOutput: "2"},
							{Input: "2", ExpectedOutput: "4"},
						},
					},
				},
			},
			{
				Id:   3,
				Type: assessment.TypeShortAnswer,
				Questions: []assessment.Question{
					{Id: 31, SectionId: 3, Type: assessment.TypeShortAnswer, Points: 5},
				},
			},
		},
	}
}

func fullAnswers() []domain.Answer {
	return []domain.Answer{
		{SubmissionId: 1, QuestionId: 11, Text: "A"},
		{SubmissionId: 1, QuestionId: 21, Code: "print(int(input())*2)", Language: "python"},
		{SubmissionId: 1, QuestionId: 31, Text: "用 channel 通信"},
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestSubmissionService_Start(t *testing.T) {
	activeJob := job.Job{Id: 10, CompanyId: 1, Status: job.StatusActive}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantId  int64
		wantErr error
	}{
		{
			name: "创建新答卷",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(activeJob, nil)
				m.assessmentSvc.EXPECT().DetailByJob(gomock.Any(), int64(10)).Return(testAssessment(), nil)
				m.repo.EXPECT().FindByUidAndAssessment(gomock.Any(), int64(7), int64(100)).
					Return(domain.Submission{}, repository.ErrRecordNotFound)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, s domain.Submission) (int64, error) {
						assert.Equal(t, int64(7), s.Uid)
						assert.Equal(t, int64(1), s.CompanyId)
						assert.Equal(t, int64(100), s.AssessmentId)
						assert.Equal(t, domain.StatusInProgress, s.Status)
						assert.True(t, s.StartedAt > 0)
						return 1, nil
					})
			},
			wantId: 1,
		},
		{
			name: "继续答题中的答卷",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(activeJob, nil)
				m.assessmentSvc.EXPECT().DetailByJob(gomock.Any(), int64(10)).Return(testAssessment(), nil)
				m.repo.EXPECT().FindByUidAndAssessment(gomock.Any(), int64(7), int64(100)).
					Return(domain.Submission{Id: 2, Uid: 7, Status: domain.StatusInProgress}, nil)
			},
			wantId: 2,
		},
		{
			name: "已经提交过",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(activeJob, nil)
				m.assessmentSvc.EXPECT().DetailByJob(gomock.Any(), int64(10)).Return(testAssessment(), nil)
				m.repo.EXPECT().FindByUidAndAssessment(gomock.Any(), int64(7), int64(100)).
					Return(domain.Submission{Id: 2, Uid: 7, Status: domain.StatusSubmitted}, nil)
			},
			wantErr: ErrAlreadySubmitted,
		},
		{
			name: "并发创建以先插入的为准",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(activeJob, nil)
				m.assessmentSvc.EXPECT().DetailByJob(gomock.Any(), int64(10)).Return(testAssessment(), nil)
				m.repo.EXPECT().FindByUidAndAssessment(gomock.Any(), int64(7), int64(100)).
					Return(domain.Submission{}, repository.ErrRecordNotFound)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrDuplicateSubmission)
				m.repo.EXPECT().FindByUidAndAssessment(gomock.Any(), int64(7), int64(100)).
					Return(domain.Submission{Id: 3, Uid: 7, Status: domain.StatusInProgress}, nil)
			},
			wantId: 3,
		},
		{
			name: "职位不存在",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(job.Job{}, job.ErrJobNotFound)
			},
			wantErr: ErrJobNotFound,
		},
		{
			name: "职位已经关闭",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).
					Return(job.Job{Id: 10, CompanyId: 1, Status: job.StatusClosed}, nil)
			},
			wantErr: ErrJobNotOpen,
		},
		{
			name: "职位没有测评",
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(activeJob, nil)
				m.assessmentSvc.EXPECT().DetailByJob(gomock.Any(), int64(10)).
					Return(assessment.Assessment{}, assessment.ErrAssessmentNotFound)
			},
			wantErr: ErrAssessmentNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			sub, err := m.service().Start(context.Background(), 7, 10)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantId, sub.Id)
		})
	}
}

func TestSubmissionService_SaveAnswer(t *testing.T) {
	inProgress := domain.Submission{Id: 1, Uid: 7, AssessmentId: 100, Status: domain.StatusInProgress}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		answer  domain.Answer
		wantErr error
	}{
		{
			name: "选择题只保留选项",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(inProgress, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
				m.repo.EXPECT().SaveAnswer(gomock.Any(), domain.Answer{
					SubmissionId: 1,
					QuestionId:   11,
					Text:         "B",
				}).Return(nil)
			},
			answer: domain.Answer{SubmissionId: 1, QuestionId: 11, Text: "B", Code: "无关"},
		},
		{
			name: "编程题可以是空代码",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(inProgress, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
				m.repo.EXPECT().SaveAnswer(gomock.Any(), domain.Answer{
					SubmissionId: 1,
					QuestionId:   21,
					Language:     "go",
				}).Return(nil)
			},
			answer: domain.Answer{SubmissionId: 1, QuestionId: 21, Language: "go"},
		},
		{
			name: "选项不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(inProgress, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
			},
			answer:  domain.Answer{SubmissionId: 1, QuestionId: 11, Text: "C"},
			wantErr: ErrInvalidAnswer,
		},
		{
			name: "简答题为空",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(inProgress, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
			},
			answer:  domain.Answer{SubmissionId: 1, QuestionId: 31, Text: "  "},
			wantErr: ErrInvalidAnswer,
		},
		{
			name: "题目不属于这份测评",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(inProgress, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
			},
			answer:  domain.Answer{SubmissionId: 1, QuestionId: 99, Text: "A"},
			wantErr: ErrQuestionNotFound,
		},
		{
			name: "别人的答卷",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Submission{Id: 1, Uid: 8, Status: domain.StatusInProgress}, nil)
			},
			answer:  domain.Answer{SubmissionId: 1, QuestionId: 11, Text: "A"},
			wantErr: ErrForbidden,
		},
		{
			name: "已经提交",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Submission{Id: 1, Uid: 7, Status: domain.StatusSubmitted}, nil)
			},
			answer:  domain.Answer{SubmissionId: 1, QuestionId: 11, Text: "A"},
			wantErr: ErrAlreadySubmitted,
		},
		{
			name: "保存的时候被提交了",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(inProgress, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
				m.repo.EXPECT().SaveAnswer(gomock.Any(), gomock.Any()).Return(repository.ErrStatusMismatch)
			},
			answer:  domain.Answer{SubmissionId: 1, QuestionId: 11, Text: "A"},
			wantErr: ErrAlreadySubmitted,
		},
		{
			name: "答卷不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Submission{}, repository.ErrRecordNotFound)
			},
			answer:  domain.Answer{SubmissionId: 1, QuestionId: 11, Text: "A"},
			wantErr: ErrSubmissionNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			err := m.service().SaveAnswer(context.Background(), 7, tc.answer)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSubmissionService_Submit(t *testing.T) {
	inProgress := domain.Submission{
		Id: 1, Uid: 7, JobId: 10, CompanyId: 1, AssessmentId: 100,
		Status: domain.StatusInProgress, Answers: fullAnswers(),
	}
	submitted := domain.Submission{
		Id: 1, Uid: 7, JobId: 10, CompanyId: 1, AssessmentId: 100,
		Status: domain.StatusSubmitted, SubmittedAt: 123,
	}
	testCases := []struct {
		name       string
		mock       func(m mocks)
		key        string
		wantStatus domain.Status
		wantErr    error
	}{
		{
			name: "提交成功",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(inProgress, nil)
				m.idempotency.EXPECT().Seen(gomock.Any(), int64(7), int64(1), "k1").Return(false, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
				m.repo.EXPECT().Submit(gomock.Any(), int64(1)).Return(nil)
				m.idempotency.EXPECT().Mark(gomock.Any(), int64(7), int64(1), "k1").Return(true, nil)
				m.producer.EXPECT().Produce(gomock.Any(), event.SubmissionEvent{
					Action:       event.ActionSubmitted,
					SubmissionId: 1,
					Uid:          7,
					JobId:        10,
					CompanyId:    1,
				}).Return(nil)
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(submitted, nil)
			},
			key:        "k1",
			wantStatus: domain.StatusSubmitted,
		},
		{
			name: "重复提交同一个 key",
			mock: func(m mocks) {
				sub := submitted
				sub.Answers = fullAnswers()
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
				m.idempotency.EXPECT().Seen(gomock.Any(), int64(7), int64(1), "k1").Return(true, nil)
			},
			key:        "k1",
			wantStatus: domain.StatusSubmitted,
		},
		{
			name: "同一个 key 用在另一份答卷",
			mock: func(m mocks) {
				// k2 之前提交过答卷 2，对答卷 1 来说是新的 key
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(inProgress, nil)
				m.idempotency.EXPECT().Seen(gomock.Any(), int64(7), int64(1), "k2").Return(false, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
				m.repo.EXPECT().Submit(gomock.Any(), int64(1)).Return(nil)
				m.idempotency.EXPECT().Mark(gomock.Any(), int64(7), int64(1), "k2").Return(true, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(submitted, nil)
			},
			key:        "k2",
			wantStatus: domain.StatusSubmitted,
		},
		{
			name: "没有 key 重复提交",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(submitted, nil)
			},
			wantErr: ErrStateViolation,
		},
		{
			name: "还有题目没有作答",
			mock: func(m mocks) {
				sub := inProgress
				sub.Answers = fullAnswers()[:2]
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
			},
			wantErr: ErrIncompleteSubmission,
		},
		{
			name: "并发提交同一个 key",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(inProgress, nil)
				m.idempotency.EXPECT().Seen(gomock.Any(), int64(7), int64(1), "k1").Return(false, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
				m.repo.EXPECT().Submit(gomock.Any(), int64(1)).Return(repository.ErrStatusMismatch)
				m.idempotency.EXPECT().Seen(gomock.Any(), int64(7), int64(1), "k1").Return(true, nil)
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(submitted, nil)
			},
			key:        "k1",
			wantStatus: domain.StatusSubmitted,
		},
		{
			name: "别人的答卷",
			mock: func(m mocks) {
				sub := inProgress
				sub.Uid = 8
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "消息发送失败不影响提交",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(inProgress, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
				m.repo.EXPECT().Submit(gomock.Any(), int64(1)).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(submitted, nil)
			},
			wantStatus: domain.StatusSubmitted,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			sub, err := m.service().Submit(context.Background(), 7, 1, tc.key)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantStatus, sub.Status)
		})
	}
}

func TestSubmissionService_AutoScoreAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)

	sub := domain.Submission{
		Id: 1, Uid: 7, CompanyId: 1, AssessmentId: 100,
		Status: domain.StatusSubmitted, Answers: fullAnswers(),
	}
	m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
	m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
	// 第二个用例输出错误，编程题只拿一半分
	m.judge.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req grader.RunRequest) (grader.RunResult, error) {
			if req.Stdin == "1" {
				return grader.RunResult{Stdout: "2\n"}, nil
			}
			return grader.RunResult{Stdout: "5\n"}, nil
		}).Times(2)
	m.repo.EXPECT().UpdateScores(gomock.Any(), repository.ScoreUpdate{
		SubmissionId: 1,
		Scores: []repository.AnswerScore{
			{QuestionId: 11, Score: 5, MaxScore: 5, IsCorrect: true},
			{QuestionId: 21, Score: 5, MaxScore: 10, IsCorrect: false},
		},
		SkipManual:     true,
		MarkAutoGraded: true,
	}).Return(domain.Submission{}, nil)
	graded := sub
	graded.TotalScore = floatPtr(10)
	graded.MaxScore = floatPtr(15)
	graded.AutoGraded = true
	m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(graded, nil)

	res, err := m.service().AutoScoreAll(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, *res.TotalScore)
	assert.True(t, res.AutoGraded)
}

func TestSubmissionService_AutoScoreAll_SkipManual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)

	answers := fullAnswers()
	answers[0].IsManuallyScored = true
	answers[0].Score = floatPtr(3)
	// 空代码交给人工
	answers[1].Code = ""
	sub := domain.Submission{
		Id: 1, Uid: 7, CompanyId: 1, AssessmentId: 100,
		Status: domain.StatusReviewed, Answers: answers,
	}
	m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
	m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
	m.repo.EXPECT().UpdateScores(gomock.Any(), repository.ScoreUpdate{
		SubmissionId:   1,
		Scores:         []repository.AnswerScore{},
		SkipManual:     true,
		MarkAutoGraded: true,
	}).Return(domain.Submission{}, nil)
	m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)

	_, err := m.service().AutoScoreAll(context.Background(), 1, 1)
	require.NoError(t, err)
}

func TestSubmissionService_ManualScore(t *testing.T) {
	submitted := domain.Submission{
		Id: 1, Uid: 7, CompanyId: 1, AssessmentId: 100,
		Status: domain.StatusSubmitted, Answers: fullAnswers(),
	}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		qid     int64
		score   float64
		wantErr error
	}{
		{
			name: "人工评分",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(submitted, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
				m.repo.EXPECT().UpdateScores(gomock.Any(), repository.ScoreUpdate{
					SubmissionId: 1,
					Scores: []repository.AnswerScore{
						{QuestionId: 31, Score: 4.5, MaxScore: 5, Manual: true},
					},
				}).Return(domain.Submission{}, nil)
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(submitted, nil)
			},
			qid:   31,
			score: 4.5,
		},
		{
			name: "超过满分",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(submitted, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
			},
			qid:     31,
			score:   6,
			wantErr: ErrInvalidScore,
		},
		{
			name: "还没有提交",
			mock: func(m mocks) {
				sub := submitted
				sub.Status = domain.StatusInProgress
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
			},
			qid:     31,
			score:   1,
			wantErr: ErrStateViolation,
		},
		{
			name: "别的公司",
			mock: func(m mocks) {
				sub := submitted
				sub.CompanyId = 2
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
			},
			qid:     31,
			score:   1,
			wantErr: ErrForbidden,
		},
		{
			name: "题目不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(submitted, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
			},
			qid:     99,
			score:   1,
			wantErr: ErrQuestionNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			_, err := m.service().ManualScore(context.Background(), 1, 1, tc.qid, tc.score)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSubmissionService_RecordDecision(t *testing.T) {
	submitted := domain.Submission{Id: 1, Uid: 7, JobId: 10, CompanyId: 1, Status: domain.StatusSubmitted}
	testCases := []struct {
		name     string
		mock     func(m mocks)
		decision domain.Decision
		wantErr  error
	}{
		{
			name: "录用",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(submitted, nil)
				m.repo.EXPECT().UpdateDecision(gomock.Any(), int64(1), domain.StatusSubmitted,
					domain.DecisionAccepted, "不错").Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), event.SubmissionEvent{
					Action:       event.ActionReviewed,
					SubmissionId: 1,
					Uid:          7,
					JobId:        10,
					CompanyId:    1,
					Decision:     "accepted",
				}).Return(nil)
			},
			decision: domain.DecisionAccepted,
		},
		{
			name:     "待定不是结论",
			mock:     func(m mocks) {},
			decision: domain.DecisionPending,
			wantErr:  ErrDecisionRequired,
		},
		{
			name: "已经给过结论",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(submitted, nil)
				m.repo.EXPECT().UpdateDecision(gomock.Any(), int64(1), domain.StatusSubmitted,
					domain.DecisionRejected, "不错").Return(repository.ErrStatusMismatch)
			},
			decision: domain.DecisionRejected,
			wantErr:  ErrStateViolation,
		},
		{
			name: "别的公司",
			mock: func(m mocks) {
				sub := submitted
				sub.CompanyId = 2
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(sub, nil)
			},
			decision: domain.DecisionShortlisted,
			wantErr:  ErrForbidden,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			err := m.service().RecordDecision(context.Background(), 1, 1, tc.decision, "不错")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSubmissionService_GradePending(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m mocks)
		cursor   int64
		limit    int
		wantNext int64
		wantCnt  int
		wantErr  bool
	}{
		{
			name: "扫到头",
			mock: func(m mocks) {
				m.repo.EXPECT().FindUngraded(gomock.Any(), int64(1000), int64(0), 10).Return([]domain.Submission{
					{Id: 1}, {Id: 2},
				}, nil)
				// 第一份已经评过了，第二份查询失败
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).
					Return(domain.Submission{Id: 1, Status: domain.StatusSubmitted, AutoGraded: true}, nil)
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(2)).
					Return(domain.Submission{}, errors.New("mock db error"))
			},
			limit:   10,
			wantCnt: 1,
		},
		{
			name: "整批都失败游标照样往后走",
			mock: func(m mocks) {
				m.repo.EXPECT().FindUngraded(gomock.Any(), int64(1000), int64(0), 2).Return([]domain.Submission{
					{Id: 3}, {Id: 5},
				}, nil)
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(3)).
					Return(domain.Submission{}, errors.New("mock db error"))
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(5)).
					Return(domain.Submission{}, errors.New("mock db error"))
			},
			limit:    2,
			wantNext: 5,
		},
		{
			name: "从游标之后接着扫",
			mock: func(m mocks) {
				m.repo.EXPECT().FindUngraded(gomock.Any(), int64(1000), int64(5), 2).Return([]domain.Submission{
					{Id: 8},
				}, nil)
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(8)).
					Return(domain.Submission{Id: 8, Status: domain.StatusReviewed, AutoGraded: true}, nil)
			},
			cursor:  5,
			limit:   2,
			wantCnt: 1,
		},
		{
			name: "查询失败",
			mock: func(m mocks) {
				m.repo.EXPECT().FindUngraded(gomock.Any(), int64(1000), int64(5), 2).
					Return(nil, errors.New("mock db error"))
			},
			cursor:   5,
			limit:    2,
			wantNext: 5,
			wantErr:  true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			next, cnt, err := m.service().GradePending(context.Background(), 1000, tc.cursor, tc.limit)
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.wantNext, next)
			assert.Equal(t, tc.wantCnt, cnt)
		})
	}
}

func TestSubmissionService_Take(t *testing.T) {
	inProgress := domain.Submission{
		Id: 1, Uid: 7, AssessmentId: 100,
		Status: domain.StatusInProgress, Answers: fullAnswers()[:1],
	}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "继续答题",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(inProgress, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
			},
		},
		{
			name: "已经提交",
			mock: func(m mocks) {
				sub := inProgress
				sub.Status = domain.StatusSubmitted
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
			},
			wantErr: ErrAlreadySubmitted,
		},
		{
			name: "别人的答卷",
			mock: func(m mocks) {
				sub := inProgress
				sub.Uid = 8
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "答卷不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).
					Return(domain.Submission{}, repository.ErrRecordNotFound)
			},
			wantErr: ErrSubmissionNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			sub, a, err := m.service().Take(context.Background(), 7, 1)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, int64(1), sub.Id)
			assert.Len(t, sub.Answers, 1)
			assertCandidateView(t, a)
		})
	}
}

func TestSubmissionService_Application(t *testing.T) {
	submitted := domain.Submission{
		Id: 1, Uid: 7, AssessmentId: 100,
		Status: domain.StatusSubmitted, Answers: fullAnswers(),
	}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "查看已经提交的答卷",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(submitted, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
			},
		},
		{
			name: "别人的答卷",
			mock: func(m mocks) {
				sub := submitted
				sub.Uid = 8
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "测评被删除了",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(submitted, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).
					Return(assessment.Assessment{}, assessment.ErrAssessmentNotFound)
			},
			wantErr: ErrAssessmentNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			sub, a, err := m.service().Application(context.Background(), 7, 1)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, domain.StatusSubmitted, sub.Status)
			assertCandidateView(t, a)
		})
	}
}

// assertCandidateView 候选人看不到正确选项和预期输出
func assertCandidateView(t *testing.T, a assessment.Assessment) {
	q, ok := a.FindQuestion(11)
	require.True(t, ok)
	for _, o := range q.Options {
		assert.False(t, o.Correct)
	}
	q, ok = a.FindQuestion(21)
	require.True(t, ok)
	require.Len(t, q.TestCases, 2)
	assert.Equal(t, "1", q.TestCases[0].Input)
	assert.Empty(t, q.TestCases[0].ExpectedOutput)
}

func TestSubmissionService_AutoScore(t *testing.T) {
	submitted := domain.Submission{
		Id: 1, Uid: 7, CompanyId: 1, AssessmentId: 100,
		Status: domain.StatusSubmitted, Answers: fullAnswers(),
	}
	testCases := []struct {
		name      string
		mock      func(m mocks)
		qid       int64
		wantScore *float64
		wantErr   error
	}{
		{
			name: "选择题自动评分",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(submitted, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
				m.repo.EXPECT().UpdateScores(gomock.Any(), repository.ScoreUpdate{
					SubmissionId: 1,
					Scores: []repository.AnswerScore{
						{QuestionId: 11, Score: 5, MaxScore: 5, IsCorrect: true},
					},
				}).Return(domain.Submission{}, nil)
				graded := submitted
				graded.TotalScore = floatPtr(5)
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(graded, nil)
			},
			qid:       11,
			wantScore: floatPtr(5),
		},
		{
			name: "简答题不能自动评分",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(submitted, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
			},
			qid: 31,
		},
		{
			name: "没有作答",
			mock: func(m mocks) {
				sub := submitted
				sub.Answers = fullAnswers()[1:]
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
			},
			qid: 11,
		},
		{
			name: "题目不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(submitted, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
			},
			qid:     99,
			wantErr: ErrQuestionNotFound,
		},
		{
			name: "还在答题",
			mock: func(m mocks) {
				sub := submitted
				sub.Status = domain.StatusInProgress
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
			},
			qid:     11,
			wantErr: ErrStateViolation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			sub, err := m.service().AutoScore(context.Background(), 1, 1, tc.qid)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantScore, sub.TotalScore)
		})
	}
}

// 自动评分写库的时候跳过了已经人工评分的答案，这些答案不算自动评分
func TestSubmissionService_AutoScoreAll_GradedMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)

	answers := []domain.Answer{fullAnswers()[0], fullAnswers()[2]}
	sub := domain.Submission{
		Id: 1, Uid: 7, CompanyId: 1, AssessmentId: 100,
		Status: domain.StatusSubmitted, Answers: answers,
	}
	m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
	m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
	m.repo.EXPECT().UpdateScores(gomock.Any(), gomock.Any()).Return(domain.Submission{}, nil)
	// 读答卷和写分数之间，选择题被人工评过分了
	refreshed := sub
	refreshed.Answers = []domain.Answer{fullAnswers()[0], fullAnswers()[2]}
	refreshed.Answers[0].IsManuallyScored = true
	refreshed.Answers[0].Score = floatPtr(2)
	m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(refreshed, nil)

	auto := gradedAnswers.WithLabelValues(assessment.TypeMCQ.String(), "auto")
	manual := gradedAnswers.WithLabelValues(assessment.TypeMCQ.String(), "manual")
	autoBefore, manualBefore := testutil.ToFloat64(auto), testutil.ToFloat64(manual)

	_, err := m.service().AutoScoreAll(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, autoBefore, testutil.ToFloat64(auto))
	assert.Equal(t, manualBefore, testutil.ToFloat64(manual))
}

func TestSubmissionService_AutoGrade(t *testing.T) {
	answers := []domain.Answer{fullAnswers()[0], fullAnswers()[2]}
	submitted := domain.Submission{
		Id: 1, Uid: 7, CompanyId: 1, AssessmentId: 100,
		Status: domain.StatusSubmitted, Answers: answers,
	}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "自动评分",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(submitted, nil)
				m.assessmentSvc.EXPECT().Detail(gomock.Any(), int64(100)).Return(testAssessment(), nil)
				// 简答题交给人工
				m.repo.EXPECT().UpdateScores(gomock.Any(), repository.ScoreUpdate{
					SubmissionId: 1,
					Scores: []repository.AnswerScore{
						{QuestionId: 11, Score: 5, MaxScore: 5, IsCorrect: true},
					},
					SkipManual:     true,
					MarkAutoGraded: true,
				}).Return(domain.Submission{}, nil)
				graded := submitted
				graded.AutoGraded = true
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(graded, nil)
			},
		},
		{
			name: "已经自动评分过",
			mock: func(m mocks) {
				sub := submitted
				sub.AutoGraded = true
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
			},
		},
		{
			name: "还在答题",
			mock: func(m mocks) {
				sub := submitted
				sub.Status = domain.StatusInProgress
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).Return(sub, nil)
			},
		},
		{
			name: "答卷不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindWithAnswers(gomock.Any(), int64(1)).
					Return(domain.Submission{}, repository.ErrRecordNotFound)
			},
			wantErr: ErrSubmissionNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			err := m.service().AutoGrade(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSubmissionService_AmendDecision(t *testing.T) {
	reviewed := domain.Submission{
		Id: 1, Uid: 7, JobId: 10, CompanyId: 1,
		Status: domain.StatusReviewed, Decision: domain.DecisionShortlisted,
	}
	testCases := []struct {
		name     string
		mock     func(m mocks)
		decision domain.Decision
		wantErr  error
	}{
		{
			name: "修改结论",
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(reviewed, nil)
				m.repo.EXPECT().UpdateDecision(gomock.Any(), int64(1), domain.StatusReviewed,
					domain.DecisionRejected, "不错").Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), event.SubmissionEvent{
					Action:       event.ActionReviewed,
					SubmissionId: 1,
					Uid:          7,
					JobId:        10,
					CompanyId:    1,
					Decision:     "rejected",
				}).Return(nil)
			},
			decision: domain.DecisionRejected,
		},
		{
			name: "还没有给过结论",
			mock: func(m mocks) {
				sub := reviewed
				sub.Status = domain.StatusSubmitted
				sub.Decision = domain.DecisionPending
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(sub, nil)
				m.repo.EXPECT().UpdateDecision(gomock.Any(), int64(1), domain.StatusReviewed,
					domain.DecisionAccepted, "不错").Return(repository.ErrStatusMismatch)
			},
			decision: domain.DecisionAccepted,
			wantErr:  ErrStateViolation,
		},
		{
			name:     "待定不是结论",
			mock:     func(m mocks) {},
			decision: domain.DecisionPending,
			wantErr:  ErrDecisionRequired,
		},
		{
			name: "别的公司",
			mock: func(m mocks) {
				sub := reviewed
				sub.CompanyId = 2
				m.repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(sub, nil)
			},
			decision: domain.DecisionAccepted,
			wantErr:  ErrForbidden,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			err := m.service().AmendDecision(context.Background(), 1, 1, tc.decision, "不错")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSubmissionService_ListByCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).
		Return(job.Job{Id: 10, CompanyId: 2}, nil)

	_, _, err := m.service().ListByCompany(context.Background(), 1, 10, 0, 10)
	assert.ErrorIs(t, err, ErrForbidden)
}
