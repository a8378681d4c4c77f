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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound      = gorm.ErrRecordNotFound
	ErrDuplicateSubmission = errors.New("已经开始过这份测评")
	// ErrStatusMismatch 状态不满足条件，更新没有生效
	ErrStatusMismatch = errors.New("答卷状态不允许该操作")
)

const (
	statusInProgress = "in_progress"
	statusSubmitted  = "submitted"
	statusReviewed   = "reviewed"
)

//go:generate mockgen -source=./submission.go -package=daomocks -destination=mocks/submission.mock.go SubmissionDAO
type SubmissionDAO interface {
	Create(ctx context.Context, s Submission) (int64, error)
	FindById(ctx context.Context, id int64) (Submission, error)
	FindByUidAndAssessment(ctx context.Context, uid, aid int64) (Submission, error)
	FindAnswers(ctx context.Context, sid int64) ([]Answer, error)
	// SaveAnswer 只有答题中的答卷可以保存答案，同一道题重复保存就是覆盖
	SaveAnswer(ctx context.Context, a Answer) error
	// Submit 只有答题中的答卷可以提交
	Submit(ctx context.Context, sid int64) error
	// UpdateScores 锁住答卷，写入评分，重新计算总分
	UpdateScores(ctx context.Context, update ScoreUpdate) (Submission, error)
	UpdateDecision(ctx context.Context, sid int64, fromStatus, decision, notes string) error

	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Submission, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	ListByCompany(ctx context.Context, companyId, jobId int64, offset, limit int) ([]Submission, error)
	CountByCompany(ctx context.Context, companyId, jobId int64) (int64, error)
	// CountPending 已经提交但是还没有给出结论
	CountPending(ctx context.Context, companyId int64) (int64, error)
	// CountGroupByStatus companyId 和 uid 为 0 的时候不过滤
	CountGroupByStatus(ctx context.Context, companyId, uid int64) (map[string]int64, error)
	// FindUngraded 提交时间早于 before 并且还没有自动评分的答卷，按照 ID 从 afterId 之后开始取
	FindUngraded(ctx context.Context, before, afterId int64, limit int) ([]Submission, error)
}

type GORMSubmissionDAO struct {
	db *egorm.Component
}

func NewGORMSubmissionDAO(db *egorm.Component) SubmissionDAO {
	return &GORMSubmissionDAO{db: db}
}

func (dao *GORMSubmissionDAO) Create(ctx context.Context, s Submission) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	err := dao.db.WithContext(ctx).Create(&s).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateSubmission
		}
	}
	return s.Id, err
}

func (dao *GORMSubmissionDAO) FindById(ctx context.Context, id int64) (Submission, error) {
	var s Submission
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (dao *GORMSubmissionDAO) FindByUidAndAssessment(ctx context.Context, uid, aid int64) (Submission, error) {
	var s Submission
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND assessment_id = ?", uid, aid).
		First(&s).Error
	return s, err
}

func (dao *GORMSubmissionDAO) FindAnswers(ctx context.Context, sid int64) ([]Answer, error) {
	var res []Answer
	err := dao.db.WithContext(ctx).
		Where("submission_id = ?", sid).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (dao *GORMSubmissionDAO) SaveAnswer(ctx context.Context, a Answer) error {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 和提交互斥，提交之后就不能再改答案了
		s, err := dao.lock(tx, a.SubmissionId)
		if err != nil {
			return err
		}
		if s.Status != statusInProgress {
			return ErrStatusMismatch
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "submission_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"text", "code", "language", "file_url", "video_url", "utime",
			}),
		}).Create(&a).Error
	})
}

func (dao *GORMSubmissionDAO) Submit(ctx context.Context, sid int64) error {
	now := time.Now().UnixMilli()
	res := dao.db.WithContext(ctx).Model(&Submission{}).
		Where("id = ? AND status = ?", sid, statusInProgress).
		Updates(map[string]any{
			"status":       statusSubmitted,
			"submitted_at": now,
			"utime":        now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusMismatch
	}
	return nil
}

func (dao *GORMSubmissionDAO) UpdateScores(ctx context.Context, update ScoreUpdate) (Submission, error) {
	var res Submission
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := dao.lock(tx, update.SubmissionId)
		if err != nil {
			return err
		}
		if s.Status != statusSubmitted && s.Status != statusReviewed {
			return ErrStatusMismatch
		}
		now := time.Now().UnixMilli()
		for _, sc := range update.Scores {
			db := tx.Model(&Answer{}).
				Where("submission_id = ? AND question_id = ?", update.SubmissionId, sc.QuestionId)
			if update.SkipManual {
				db = db.Where("is_manually_scored = ?", false)
			}
			// 没有作答的题目不会有记录，更新不到就算了
			err = db.Updates(map[string]any{
				"score":              sc.Score,
				"max_score":          sc.MaxScore,
				"is_correct":         sc.IsCorrect,
				"is_manually_scored": sc.Manual,
				"utime":              now,
			}).Error
			if err != nil {
				return err
			}
		}
		// 每次都全量重新计算，SUM 会跳过 NULL
		var sum struct {
			TotalScore sql.NullFloat64
			MaxScore   sql.NullFloat64
		}
		err = tx.Model(&Answer{}).
			Select("SUM(score) AS total_score, SUM(max_score) AS max_score").
			Where("submission_id = ?", update.SubmissionId).
			Scan(&sum).Error
		if err != nil {
			return err
		}
		updates := map[string]any{
			"total_score": sum.TotalScore,
			"max_score":   sum.MaxScore,
			"utime":       now,
		}
		if update.MarkAutoGraded {
			updates["auto_graded"] = true
		}
		err = tx.Model(&Submission{}).Where("id = ?", update.SubmissionId).Updates(updates).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", update.SubmissionId).First(&res).Error
	})
	return res, err
}

func (dao *GORMSubmissionDAO) UpdateDecision(ctx context.Context, sid int64, fromStatus, decision, notes string) error {
	res := dao.db.WithContext(ctx).Model(&Submission{}).
		Where("id = ? AND status = ?", sid, fromStatus).
		Updates(map[string]any{
			"status":        statusReviewed,
			"decision":      decision,
			"company_notes": notes,
			"utime":         time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusMismatch
	}
	return nil
}

func (dao *GORMSubmissionDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Submission, error) {
	var res []Submission
	err := dao.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("utime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMSubmissionDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Submission{}).
		Where("uid = ?", uid).Count(&cnt).Error
	return cnt, err
}

func (dao *GORMSubmissionDAO) ListByCompany(ctx context.Context, companyId, jobId int64, offset, limit int) ([]Submission, error) {
	var res []Submission
	err := dao.companyFilter(ctx, companyId, jobId).
		Order("submitted_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMSubmissionDAO) CountByCompany(ctx context.Context, companyId, jobId int64) (int64, error) {
	var cnt int64
	err := dao.companyFilter(ctx, companyId, jobId).Model(&Submission{}).Count(&cnt).Error
	return cnt, err
}

// companyFilter 公司只能看到已经提交的答卷
func (dao *GORMSubmissionDAO) companyFilter(ctx context.Context, companyId, jobId int64) *gorm.DB {
	db := dao.db.WithContext(ctx).
		Where("company_id = ? AND status IN ?", companyId, []string{statusSubmitted, statusReviewed})
	if jobId > 0 {
		db = db.Where("job_id = ?", jobId)
	}
	return db
}

func (dao *GORMSubmissionDAO) CountPending(ctx context.Context, companyId int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Submission{}).
		Where("company_id = ? AND status = ? AND decision = ?", companyId, statusSubmitted, "").
		Count(&cnt).Error
	return cnt, err
}

func (dao *GORMSubmissionDAO) CountGroupByStatus(ctx context.Context, companyId, uid int64) (map[string]int64, error) {
	db := dao.db.WithContext(ctx).Model(&Submission{})
	if companyId > 0 {
		db = db.Where("company_id = ?", companyId)
	}
	if uid > 0 {
		db = db.Where("uid = ?", uid)
	}
	var rows []struct {
		Status string
		Cnt    int64
	}
	err := db.Select("status, COUNT(*) AS cnt").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[string]int64, len(rows))
	for _, r := range rows {
		res[r.Status] = r.Cnt
	}
	return res, nil
}

func (dao *GORMSubmissionDAO) FindUngraded(ctx context.Context, before, afterId int64, limit int) ([]Submission, error) {
	var res []Submission
	err := dao.db.WithContext(ctx).
		Where("id > ? AND status IN ? AND auto_graded = ? AND submitted_at < ?",
			afterId, []string{statusSubmitted, statusReviewed}, false, before).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMSubmissionDAO) lock(tx *gorm.DB, sid int64) (Submission, error) {
	var s Submission
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", sid).First(&s).Error
	return s, err
}
