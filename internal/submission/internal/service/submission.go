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
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/hirebook/internal/assessment"
	"github.com/ecodeclub/hirebook/internal/job"
	"github.com/ecodeclub/hirebook/internal/submission/internal/domain"
	"github.com/ecodeclub/hirebook/internal/submission/internal/event"
	"github.com/ecodeclub/hirebook/internal/submission/internal/repository"
	"github.com/ecodeclub/hirebook/internal/submission/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/submission/internal/service/grader"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSubmissionNotFound   = errors.New("答卷不存在")
	ErrJobNotFound          = errors.New("职位不存在")
	ErrAssessmentNotFound   = errors.New("测评不存在")
	ErrQuestionNotFound     = errors.New("题目不存在")
	ErrForbidden            = errors.New("无权访问该答卷")
	ErrJobNotOpen           = errors.New("职位已经停止招聘")
	ErrAlreadySubmitted     = errors.New("答卷已经提交")
	ErrStateViolation       = errors.New("答卷当前状态不允许该操作")
	ErrIncompleteSubmission = errors.New("还有题目没有作答")
	ErrInvalidAnswer        = errors.New("答案不合法")
	ErrDecisionRequired     = errors.New("必须给出明确的结论")
	ErrInvalidScore         = grader.ErrInvalidScore
)

//go:generate mockgen -source=./submission.go -package=svcmocks -destination=mocks/submission.mock.go Service
type Service interface {
	// Start 开始答题，已经有答题中的答卷就直接返回
	Start(ctx context.Context, uid, jobId int64) (domain.Submission, error)
	// Take 继续答题，返回的测评不带答案
	Take(ctx context.Context, uid, sid int64) (domain.Submission, assessment.Assessment, error)
	SaveAnswer(ctx context.Context, uid int64, a domain.Answer) error
	// Submit key 不为空的时候，同一个 key 重复提交直接返回答卷
	Submit(ctx context.Context, uid, sid int64, key string) (domain.Submission, error)
	// Application 候选人查看自己的答卷，只读
	Application(ctx context.Context, uid, sid int64) (domain.Submission, assessment.Assessment, error)
	ListByCandidate(ctx context.Context, uid int64, offset, limit int) ([]domain.Submission, int64, error)

	// ListByCompany jobId 为 0 的时候返回公司所有职位的答卷
	ListByCompany(ctx context.Context, companyId, jobId int64, offset, limit int) ([]domain.Submission, int64, error)
	CountPending(ctx context.Context, companyId int64) (int64, error)
	Review(ctx context.Context, companyId, sid int64) (domain.Submission, assessment.Assessment, error)
	AutoScore(ctx context.Context, companyId, sid, qid int64) (domain.Submission, error)
	// AutoScoreAll 跳过已经人工评分的答案
	AutoScoreAll(ctx context.Context, companyId, sid int64) (domain.Submission, error)
	ManualScore(ctx context.Context, companyId, sid, qid int64, score float64) (domain.Submission, error)
	RecordDecision(ctx context.Context, companyId, sid int64, decision domain.Decision, notes string) error
	// AmendDecision 修改已经给出的结论
	AmendDecision(ctx context.Context, companyId, sid int64, decision domain.Decision, notes string) error

	// AutoGrade 提交之后的自动评分，已经评过的直接跳过
	AutoGrade(ctx context.Context, sid int64) error
	// GradePending 从 cursor 之后取一批答卷评分，返回下一批的游标和成功评分的数量。
	// 游标为 0 说明已经扫到头，下一次从头开始
	GradePending(ctx context.Context, before, cursor int64, limit int) (int64, int, error)
	// CountByStatus companyId 和 uid 为 0 的时候不过滤
	CountByStatus(ctx context.Context, companyId, uid int64) (map[domain.Status]int64, error)
}

type submissionService struct {
	repo          repository.SubmissionRepository
	idempotency   cache.IdempotencyCache
	grader        *grader.Grader
	jobSvc        job.Service
	assessmentSvc assessment.Service
	producer      event.SubmissionEventProducer
	logger        *elog.Component
}

func NewService(repo repository.SubmissionRepository,
	idempotency cache.IdempotencyCache,
	g *grader.Grader,
	jobSvc job.Service,
	assessmentSvc assessment.Service,
	producer event.SubmissionEventProducer) Service {
	return &submissionService{
		repo:          repo,
		idempotency:   idempotency,
		grader:        g,
		jobSvc:        jobSvc,
		assessmentSvc: assessmentSvc,
		producer:      producer,
		logger:        elog.DefaultLogger,
	}
}

func (s *submissionService) Start(ctx context.Context, uid, jobId int64) (domain.Submission, error) {
	j, err := s.jobSvc.Detail(ctx, jobId)
	switch {
	case errors.Is(err, job.ErrJobNotFound):
		return domain.Submission{}, fmt.Errorf("%w: jid %d", ErrJobNotFound, jobId)
	case err != nil:
		return domain.Submission{}, err
	}
	if !j.Open() {
		return domain.Submission{}, fmt.Errorf("%w: jid %d, status %s", ErrJobNotOpen, jobId, j.Status)
	}
	a, err := s.assessmentSvc.DetailByJob(ctx, jobId)
	switch {
	case errors.Is(err, assessment.ErrAssessmentNotFound):
		return domain.Submission{}, fmt.Errorf("%w: jid %d", ErrAssessmentNotFound, jobId)
	case err != nil:
		return domain.Submission{}, err
	}
	existing, err := s.repo.FindByUidAndAssessment(ctx, uid, a.Id)
	switch {
	case err == nil:
		return s.resume(existing)
	case !errors.Is(err, repository.ErrRecordNotFound):
		return domain.Submission{}, err
	}
	sub := domain.Submission{
		JobId:        jobId,
		CompanyId:    j.CompanyId,
		Uid:          uid,
		AssessmentId: a.Id,
		Status:       domain.StatusInProgress,
		StartedAt:    time.Now().UnixMilli(),
	}
	sub.Id, err = s.repo.Create(ctx, sub)
	if errors.Is(err, repository.ErrDuplicateSubmission) {
		// 并发开始，以先插入的为准
		existing, err = s.repo.FindByUidAndAssessment(ctx, uid, a.Id)
		if err != nil {
			return domain.Submission{}, err
		}
		return s.resume(existing)
	}
	return sub, err
}

func (s *submissionService) resume(sub domain.Submission) (domain.Submission, error) {
	if sub.Editable() {
		return sub, nil
	}
	return domain.Submission{}, fmt.Errorf("%w: sid %d", ErrAlreadySubmitted, sub.Id)
}

func (s *submissionService) Take(ctx context.Context, uid, sid int64) (domain.Submission, assessment.Assessment, error) {
	sub, err := s.candidateSubmission(ctx, uid, sid)
	if err != nil {
		return domain.Submission{}, assessment.Assessment{}, err
	}
	if !sub.Editable() {
		return domain.Submission{}, assessment.Assessment{}, fmt.Errorf("%w: sid %d", ErrAlreadySubmitted, sid)
	}
	a, err := s.assessmentOf(ctx, sub)
	if err != nil {
		return domain.Submission{}, assessment.Assessment{}, err
	}
	return sub, a.CandidateView(), nil
}

func (s *submissionService) Application(ctx context.Context, uid, sid int64) (domain.Submission, assessment.Assessment, error) {
	sub, err := s.candidateSubmission(ctx, uid, sid)
	if err != nil {
		return domain.Submission{}, assessment.Assessment{}, err
	}
	a, err := s.assessmentOf(ctx, sub)
	if err != nil {
		return domain.Submission{}, assessment.Assessment{}, err
	}
	return sub, a.CandidateView(), nil
}

func (s *submissionService) SaveAnswer(ctx context.Context, uid int64, ans domain.Answer) error {
	sub, err := s.repo.FindById(ctx, ans.SubmissionId)
	if err != nil {
		return s.notFound(err, ans.SubmissionId)
	}
	if !sub.OwnedBy(uid) {
		return fmt.Errorf("%w: uid %d, sid %d", ErrForbidden, uid, sub.Id)
	}
	if !sub.Editable() {
		return fmt.Errorf("%w: sid %d", ErrAlreadySubmitted, sub.Id)
	}
	a, err := s.assessmentOf(ctx, sub)
	if err != nil {
		return err
	}
	q, ok := a.FindQuestion(ans.QuestionId)
	if !ok {
		return fmt.Errorf("%w: qid %d", ErrQuestionNotFound, ans.QuestionId)
	}
	ans, err = normalizeAnswer(q, ans)
	if err != nil {
		return err
	}
	err = s.repo.SaveAnswer(ctx, ans)
	if errors.Is(err, repository.ErrStatusMismatch) {
		return fmt.Errorf("%w: sid %d", ErrAlreadySubmitted, sub.Id)
	}
	return err
}

// normalizeAnswer 只保留和题型相关的字段
func normalizeAnswer(q assessment.Question, ans domain.Answer) (domain.Answer, error) {
	res := domain.Answer{
		SubmissionId: ans.SubmissionId,
		QuestionId:   ans.QuestionId,
	}
	switch q.Type {
	case assessment.TypeMCQ:
		if !q.HasOption(ans.Text) {
			return res, fmt.Errorf("%w: %q 不是可选项", ErrInvalidAnswer, ans.Text)
		}
		res.Text = ans.Text
	case assessment.TypeCoding:
		// 空代码也允许保存，评分的时候交给人工
		res.Code = ans.Code
		res.Language = ans.Language
	case assessment.TypeShortAnswer, assessment.TypeLongAnswer:
		res.Text = ans.Text
	case assessment.TypeVideo:
		res.VideoURL = ans.VideoURL
	case assessment.TypeFileUpload, assessment.TypeExcel:
		res.FileURL = ans.FileURL
	default:
		return res, fmt.Errorf("%w: 未知题型 %s", ErrInvalidAnswer, q.Type)
	}
	if q.Type != assessment.TypeCoding &&
		strings.TrimSpace(res.Text+res.VideoURL+res.FileURL) == "" {
		return res, fmt.Errorf("%w: 答案不能为空", ErrInvalidAnswer)
	}
	return res, nil
}

func (s *submissionService) Submit(ctx context.Context, uid, sid int64, key string) (domain.Submission, error) {
	sub, err := s.candidateSubmission(ctx, uid, sid)
	if err != nil {
		return domain.Submission{}, err
	}
	if s.seen(ctx, uid, sid, key) {
		return s.strip(sub), nil
	}
	if !sub.Editable() {
		return domain.Submission{}, fmt.Errorf("%w: sid %d 已经是 %s", ErrStateViolation, sid, sub.Status)
	}
	a, err := s.assessmentOf(ctx, sub)
	if err != nil {
		return domain.Submission{}, err
	}
	if missing := missingQuestions(a, sub); len(missing) > 0 {
		return domain.Submission{}, fmt.Errorf("%w: %v", ErrIncompleteSubmission, missing)
	}
	err = s.repo.Submit(ctx, sid)
	if errors.Is(err, repository.ErrStatusMismatch) {
		// 同一个 key 的并发请求，另外一个已经成功了
		if s.seen(ctx, uid, sid, key) {
			return s.repo.FindById(ctx, sid)
		}
		return domain.Submission{}, fmt.Errorf("%w: sid %d", ErrStateViolation, sid)
	}
	if err != nil {
		return domain.Submission{}, err
	}
	if key != "" {
		if _, err = s.idempotency.Mark(ctx, uid, sid, key); err != nil {
			s.logger.Warn("记录提交幂等键失败", elog.FieldErr(err), elog.Int64("sid", sid))
		}
	}
	s.produce(ctx, event.SubmissionEvent{
		Action:       event.ActionSubmitted,
		SubmissionId: sid,
		Uid:          uid,
		JobId:        sub.JobId,
		CompanyId:    sub.CompanyId,
	})
	return s.repo.FindById(ctx, sid)
}

func (s *submissionService) seen(ctx context.Context, uid, sid int64, key string) bool {
	if key == "" {
		return false
	}
	ok, err := s.idempotency.Seen(ctx, uid, sid, key)
	if err != nil {
		s.logger.Warn("查询提交幂等键失败", elog.FieldErr(err), elog.Int64("uid", uid))
		return false
	}
	return ok
}

func (s *submissionService) strip(sub domain.Submission) domain.Submission {
	sub.Answers = nil
	return sub
}

// missingQuestions 按照题目顺序返回没有作答的题目
func missingQuestions(a assessment.Assessment, sub domain.Submission) []int64 {
	var missing []int64
	for _, q := range a.Questions() {
		if _, ok := sub.FindAnswer(q.Id); !ok {
			missing = append(missing, q.Id)
		}
	}
	return missing
}

func (s *submissionService) ListByCandidate(ctx context.Context, uid int64, offset, limit int) ([]domain.Submission, int64, error) {
	var (
		eg    errgroup.Group
		subs  []domain.Submission
		total int64
	)
	eg.Go(func() error {
		var err error
		subs, err = s.repo.ListByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid)
		return err
	})
	return subs, total, eg.Wait()
}

func (s *submissionService) ListByCompany(ctx context.Context, companyId, jobId int64, offset, limit int) ([]domain.Submission, int64, error) {
	if jobId > 0 {
		j, err := s.jobSvc.Detail(ctx, jobId)
		switch {
		case errors.Is(err, job.ErrJobNotFound):
			return nil, 0, fmt.Errorf("%w: jid %d", ErrJobNotFound, jobId)
		case err != nil:
			return nil, 0, err
		}
		if !j.OwnedBy(companyId) {
			return nil, 0, fmt.Errorf("%w: uid %d, jid %d", ErrForbidden, companyId, jobId)
		}
	}
	var (
		eg    errgroup.Group
		subs  []domain.Submission
		total int64
	)
	eg.Go(func() error {
		var err error
		subs, err = s.repo.ListByCompany(ctx, companyId, jobId, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByCompany(ctx, companyId, jobId)
		return err
	})
	return subs, total, eg.Wait()
}

func (s *submissionService) CountPending(ctx context.Context, companyId int64) (int64, error) {
	return s.repo.CountPending(ctx, companyId)
}

func (s *submissionService) Review(ctx context.Context, companyId, sid int64) (domain.Submission, assessment.Assessment, error) {
	sub, err := s.companySubmission(ctx, companyId, sid)
	if err != nil {
		return domain.Submission{}, assessment.Assessment{}, err
	}
	a, err := s.assessmentOf(ctx, sub)
	return sub, a, err
}

func (s *submissionService) AutoScore(ctx context.Context, companyId, sid, qid int64) (domain.Submission, error) {
	sub, a, err := s.Review(ctx, companyId, sid)
	if err != nil {
		return domain.Submission{}, err
	}
	q, ok := a.FindQuestion(qid)
	if !ok {
		return domain.Submission{}, fmt.Errorf("%w: qid %d", ErrQuestionNotFound, qid)
	}
	ans, ok := sub.FindAnswer(qid)
	if !ok {
		// 没有作答，什么也不用做
		return sub, nil
	}
	res, err := s.grader.Grade(ctx, q, ans)
	if err != nil {
		return domain.Submission{}, err
	}
	if !res.Graded {
		return sub, nil
	}
	return s.updateScores(ctx, a, repository.ScoreUpdate{
		SubmissionId: sid,
		Scores:       []repository.AnswerScore{toAnswerScore(qid, res, false)},
	})
}

func (s *submissionService) AutoScoreAll(ctx context.Context, companyId, sid int64) (domain.Submission, error) {
	sub, a, err := s.Review(ctx, companyId, sid)
	if err != nil {
		return domain.Submission{}, err
	}
	return s.autoGradeAll(ctx, sub, a)
}

func (s *submissionService) ManualScore(ctx context.Context, companyId, sid, qid int64, score float64) (domain.Submission, error) {
	sub, a, err := s.Review(ctx, companyId, sid)
	if err != nil {
		return domain.Submission{}, err
	}
	q, ok := a.FindQuestion(qid)
	if !ok {
		return domain.Submission{}, fmt.Errorf("%w: qid %d", ErrQuestionNotFound, qid)
	}
	res, err := grader.Manual(q, score)
	if err != nil {
		return domain.Submission{}, err
	}
	if _, ok = sub.FindAnswer(qid); !ok {
		return sub, nil
	}
	return s.updateScores(ctx, a, repository.ScoreUpdate{
		SubmissionId: sid,
		Scores:       []repository.AnswerScore{toAnswerScore(qid, res, true)},
	})
}

func (s *submissionService) RecordDecision(ctx context.Context, companyId, sid int64, decision domain.Decision, notes string) error {
	return s.decide(ctx, companyId, sid, domain.StatusSubmitted, decision, notes)
}

func (s *submissionService) AmendDecision(ctx context.Context, companyId, sid int64, decision domain.Decision, notes string) error {
	return s.decide(ctx, companyId, sid, domain.StatusReviewed, decision, notes)
}

func (s *submissionService) decide(ctx context.Context, companyId, sid int64,
	from domain.Status, decision domain.Decision, notes string) error {
	if !decision.Recordable() {
		return fmt.Errorf("%w: %q", ErrDecisionRequired, decision)
	}
	sub, err := s.repo.FindById(ctx, sid)
	if err != nil {
		return s.notFound(err, sid)
	}
	if sub.CompanyId != companyId {
		return fmt.Errorf("%w: uid %d, sid %d", ErrForbidden, companyId, sid)
	}
	err = s.repo.UpdateDecision(ctx, sid, from, decision, notes)
	if errors.Is(err, repository.ErrStatusMismatch) {
		return fmt.Errorf("%w: sid %d 需要是 %s", ErrStateViolation, sid, from)
	}
	if err != nil {
		return err
	}
	s.produce(ctx, event.SubmissionEvent{
		Action:       event.ActionReviewed,
		SubmissionId: sid,
		Uid:          sub.Uid,
		JobId:        sub.JobId,
		CompanyId:    sub.CompanyId,
		Decision:     decision.String(),
	})
	return nil
}

func (s *submissionService) AutoGrade(ctx context.Context, sid int64) error {
	sub, err := s.repo.FindWithAnswers(ctx, sid)
	if err != nil {
		return s.notFound(err, sid)
	}
	if !sub.Scorable() || sub.AutoGraded {
		return nil
	}
	a, err := s.assessmentOf(ctx, sub)
	if err != nil {
		return err
	}
	_, err = s.autoGradeAll(ctx, sub, a)
	return err
}

func (s *submissionService) GradePending(ctx context.Context, before, cursor int64, limit int) (int64, int, error) {
	subs, err := s.repo.FindUngraded(ctx, before, cursor, limit)
	if err != nil {
		return cursor, 0, err
	}
	cnt := 0
	for _, sub := range subs {
		err = s.AutoGrade(ctx, sub.Id)
		if err != nil {
			// 单个失败不影响别的答卷，游标越过它，扫完一轮之后再试
			s.logger.Error("自动评分失败", elog.FieldErr(err), elog.Int64("sid", sub.Id))
			continue
		}
		cnt++
	}
	if len(subs) < limit {
		return 0, cnt, nil
	}
	return subs[len(subs)-1].Id, cnt, nil
}

func (s *submissionService) CountByStatus(ctx context.Context, companyId, uid int64) (map[domain.Status]int64, error) {
	return s.repo.CountByStatus(ctx, companyId, uid)
}

// autoGradeAll 评完所有能自动评分的题目，然后标记为已经自动评分
func (s *submissionService) autoGradeAll(ctx context.Context, sub domain.Submission, a assessment.Assessment) (domain.Submission, error) {
	scores := make([]repository.AnswerScore, 0, len(sub.Answers))
	for _, ans := range sub.Answers {
		if ans.IsManuallyScored {
			continue
		}
		q, ok := a.FindQuestion(ans.QuestionId)
		if !ok || !grader.AutoGradable(q.Type) {
			continue
		}
		res, err := s.grader.Grade(ctx, q, ans)
		if err != nil {
			return domain.Submission{}, fmt.Errorf("题目 %d 评分失败: %w", q.Id, err)
		}
		if !res.Graded {
			continue
		}
		scores = append(scores, toAnswerScore(q.Id, res, false))
	}
	return s.updateScores(ctx, a, repository.ScoreUpdate{
		SubmissionId:   sub.Id,
		Scores:         scores,
		SkipManual:     true,
		MarkAutoGraded: true,
	})
}

func (s *submissionService) updateScores(ctx context.Context, a assessment.Assessment,
	update repository.ScoreUpdate) (domain.Submission, error) {
	_, err := s.repo.UpdateScores(ctx, update)
	switch {
	case errors.Is(err, repository.ErrStatusMismatch):
		return domain.Submission{}, fmt.Errorf("%w: sid %d 还没有提交", ErrStateViolation, update.SubmissionId)
	case err != nil:
		return domain.Submission{}, s.notFound(err, update.SubmissionId)
	}
	sub, err := s.repo.FindWithAnswers(ctx, update.SubmissionId)
	if err != nil {
		return domain.Submission{}, err
	}
	recordGraded(a, update.Scores, sub)
	return sub, nil
}

// recordGraded 只统计真正写进去的评分，自动评分的时候被跳过的人工评分不算
func recordGraded(a assessment.Assessment, scores []repository.AnswerScore, sub domain.Submission) {
	for _, sc := range scores {
		ans, ok := sub.FindAnswer(sc.QuestionId)
		if !ok || ans.IsManuallyScored != sc.Manual {
			continue
		}
		q, _ := a.FindQuestion(sc.QuestionId)
		mode := "auto"
		if sc.Manual {
			mode = "manual"
		}
		gradedAnswers.WithLabelValues(q.Type.String(), mode).Inc()
	}
}

func toAnswerScore(qid int64, res grader.Result, manual bool) repository.AnswerScore {
	return repository.AnswerScore{
		QuestionId: qid,
		Score:      res.Score,
		MaxScore:   res.MaxScore,
		IsCorrect:  res.IsCorrect,
		Manual:     manual,
	}
}

func (s *submissionService) candidateSubmission(ctx context.Context, uid, sid int64) (domain.Submission, error) {
	sub, err := s.repo.FindWithAnswers(ctx, sid)
	if err != nil {
		return domain.Submission{}, s.notFound(err, sid)
	}
	if !sub.OwnedBy(uid) {
		return domain.Submission{}, fmt.Errorf("%w: uid %d, sid %d", ErrForbidden, uid, sid)
	}
	return sub, nil
}

// companySubmission 公司只能看到自己职位下已经提交的答卷
func (s *submissionService) companySubmission(ctx context.Context, companyId, sid int64) (domain.Submission, error) {
	sub, err := s.repo.FindWithAnswers(ctx, sid)
	if err != nil {
		return domain.Submission{}, s.notFound(err, sid)
	}
	if sub.CompanyId != companyId {
		return domain.Submission{}, fmt.Errorf("%w: uid %d, sid %d", ErrForbidden, companyId, sid)
	}
	if !sub.Scorable() {
		return domain.Submission{}, fmt.Errorf("%w: sid %d 还没有提交", ErrStateViolation, sid)
	}
	return sub, nil
}

func (s *submissionService) assessmentOf(ctx context.Context, sub domain.Submission) (assessment.Assessment, error) {
	a, err := s.assessmentSvc.Detail(ctx, sub.AssessmentId)
	if errors.Is(err, assessment.ErrAssessmentNotFound) {
		return assessment.Assessment{}, fmt.Errorf("%w: aid %d", ErrAssessmentNotFound, sub.AssessmentId)
	}
	return a, err
}

func (s *submissionService) notFound(err error, sid int64) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: sid %d", ErrSubmissionNotFound, sid)
	}
	return err
}

func (s *submissionService) produce(ctx context.Context, evt event.SubmissionEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送答卷事件失败", elog.FieldErr(err),
			elog.String("action", evt.Action),
			elog.Int64("sid", evt.SubmissionId))
	}
}
