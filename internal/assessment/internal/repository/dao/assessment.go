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
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound      = gorm.ErrRecordNotFound
	ErrDuplicateAssessment = errors.New("该职位已经有测评了")
	// ErrOrderMismatch 重新排序的时候给的 id 和库里的对不上
	ErrOrderMismatch = errors.New("排序的元素和现有的不一致")
)

//go:generate mockgen -source=./assessment.go -package=daomocks -destination=mocks/assessment.mock.go AssessmentDAO
type AssessmentDAO interface {
	CreateAssessment(ctx context.Context, a Assessment) (int64, error)
	UpdateAssessment(ctx context.Context, a Assessment) error
	// DeleteAssessment 连带删除下面所有的 section 和 question
	DeleteAssessment(ctx context.Context, id int64) error
	FindAssessmentById(ctx context.Context, id int64) (Assessment, error)
	FindAssessmentByJobId(ctx context.Context, jobId int64) (Assessment, error)

	// CreateSection 顺序排在最后
	CreateSection(ctx context.Context, s Section) (int64, error)
	UpdateSection(ctx context.Context, s Section) error
	// DeleteSection 连带删除下面所有的 question
	DeleteSection(ctx context.Context, id int64) error
	FindSectionById(ctx context.Context, id int64) (Section, error)
	FindSectionsByAssessmentId(ctx context.Context, aid int64) ([]Section, error)
	ReorderSections(ctx context.Context, aid int64, ids []int64) error

	// CreateQuestion 顺序排在最后
	CreateQuestion(ctx context.Context, q Question) (int64, error)
	UpdateQuestion(ctx context.Context, q Question) error
	DeleteQuestion(ctx context.Context, id int64) error
	FindQuestionById(ctx context.Context, id int64) (Question, error)
	FindQuestionsByAssessmentId(ctx context.Context, aid int64) ([]Question, error)
	ReorderQuestions(ctx context.Context, sid int64, ids []int64) error
}

type GORMAssessmentDAO struct {
	db *egorm.Component
}

func NewGORMAssessmentDAO(db *egorm.Component) AssessmentDAO {
	return &GORMAssessmentDAO{db: db}
}

func (dao *GORMAssessmentDAO) CreateAssessment(ctx context.Context, a Assessment) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := dao.db.WithContext(ctx).Create(&a).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateAssessment
		}
	}
	return a.Id, err
}

func (dao *GORMAssessmentDAO) UpdateAssessment(ctx context.Context, a Assessment) error {
	res := dao.db.WithContext(ctx).Model(&Assessment{}).
		Where("id = ?", a.Id).
		Updates(map[string]any{
			"title":         a.Title,
			"description":   a.Description,
			"time_limit":    a.TimeLimit,
			"passing_score": a.PassingScore,
			"utime":         time.Now().UnixMilli(),
		})
	return affected(res)
}

func (dao *GORMAssessmentDAO) DeleteAssessment(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", id).Delete(&Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assessment_id = ?", id).Delete(&Section{}).Error; err != nil {
			return err
		}
		return affected(tx.Where("id = ?", id).Delete(&Assessment{}))
	})
}

func (dao *GORMAssessmentDAO) FindAssessmentById(ctx context.Context, id int64) (Assessment, error) {
	var a Assessment
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (dao *GORMAssessmentDAO) FindAssessmentByJobId(ctx context.Context, jobId int64) (Assessment, error) {
	var a Assessment
	err := dao.db.WithContext(ctx).Where("job_id = ?", jobId).First(&a).Error
	return a, err
}

func (dao *GORMAssessmentDAO) CreateSection(ctx context.Context, s Section) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 锁住测评，同一份测评下面的 section 串行创建
		var a Assessment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", s.AssessmentId).First(&a).Error
		if err != nil {
			return err
		}
		s.OrderIdx, err = nextOrderIdx(tx, &Section{}, "assessment_id", s.AssessmentId)
		if err != nil {
			return err
		}
		return tx.Create(&s).Error
	})
	return s.Id, err
}

func (dao *GORMAssessmentDAO) UpdateSection(ctx context.Context, s Section) error {
	res := dao.db.WithContext(ctx).Model(&Section{}).
		Where("id = ?", s.Id).
		Updates(map[string]any{
			"title":       s.Title,
			"description": s.Description,
			"time_limit":  s.TimeLimit,
			"utime":       time.Now().UnixMilli(),
		})
	return affected(res)
}

func (dao *GORMAssessmentDAO) DeleteSection(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", id).Delete(&Question{}).Error; err != nil {
			return err
		}
		return affected(tx.Where("id = ?", id).Delete(&Section{}))
	})
}

func (dao *GORMAssessmentDAO) FindSectionById(ctx context.Context, id int64) (Section, error) {
	var s Section
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (dao *GORMAssessmentDAO) FindSectionsByAssessmentId(ctx context.Context, aid int64) ([]Section, error) {
	var res []Section
	err := dao.db.WithContext(ctx).Where("assessment_id = ?", aid).
		Order("order_idx ASC, id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMAssessmentDAO) ReorderSections(ctx context.Context, aid int64, ids []int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a Assessment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", aid).First(&a).Error
		if err != nil {
			return err
		}
		return reorder(tx, &Section{}, "assessment_id", aid, ids)
	})
}

func (dao *GORMAssessmentDAO) CreateQuestion(ctx context.Context, q Question) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime = now
	q.Utime = now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s Section
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", q.SectionId).First(&s).Error
		if err != nil {
			return err
		}
		q.AssessmentId = s.AssessmentId
		q.OrderIdx, err = nextOrderIdx(tx, &Question{}, "section_id", q.SectionId)
		if err != nil {
			return err
		}
		return tx.Create(&q).Error
	})
	return q.Id, err
}

func (dao *GORMAssessmentDAO) UpdateQuestion(ctx context.Context, q Question) error {
	res := dao.db.WithContext(ctx).Model(&Question{}).
		Where("id = ?", q.Id).
		Updates(map[string]any{
			"text":       q.Text,
			"points":     q.Points,
			"options":    q.Options,
			"test_cases": q.TestCases,
			"utime":      time.Now().UnixMilli(),
		})
	return affected(res)
}

func (dao *GORMAssessmentDAO) DeleteQuestion(ctx context.Context, id int64) error {
	return affected(dao.db.WithContext(ctx).Where("id = ?", id).Delete(&Question{}))
}

func (dao *GORMAssessmentDAO) FindQuestionById(ctx context.Context, id int64) (Question, error) {
	var q Question
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	return q, err
}

func (dao *GORMAssessmentDAO) FindQuestionsByAssessmentId(ctx context.Context, aid int64) ([]Question, error) {
	var res []Question
	err := dao.db.WithContext(ctx).Where("assessment_id = ?", aid).
		Order("section_id ASC, order_idx ASC, id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMAssessmentDAO) ReorderQuestions(ctx context.Context, sid int64, ids []int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s Section
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", sid).First(&s).Error
		if err != nil {
			return err
		}
		return reorder(tx, &Question{}, "section_id", sid, ids)
	})
}

// nextOrderIdx 必须在持有父节点锁的事务里面调用
func nextOrderIdx(tx *gorm.DB, model any, parentCol string, parentId int64) (int, error) {
	var maxIdx int
	err := tx.Model(model).
		Where(fmt.Sprintf("%s = ?", parentCol), parentId).
		Select("COALESCE(MAX(order_idx), -1)").
		Scan(&maxIdx).Error
	return maxIdx + 1, err
}

// reorder 按照 ids 的顺序重写 order_idx，ids 必须恰好是父节点下面的全部元素
func reorder(tx *gorm.DB, model any, parentCol string, parentId int64, ids []int64) error {
	where := fmt.Sprintf("%s = ?", parentCol)
	var existing []int64
	err := tx.Model(model).Where(where, parentId).Pluck("id", &existing).Error
	if err != nil {
		return err
	}
	if !sameSet(existing, ids) {
		return ErrOrderMismatch
	}
	now := time.Now().UnixMilli()
	for i, id := range ids {
		err = tx.Model(model).Where("id = ?", id).
			Updates(map[string]any{
				"order_idx": i,
				"utime":     now,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func sameSet(existing, ids []int64) bool {
	if len(existing) != len(ids) {
		return false
	}
	set := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		set[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			return false
		}
		// 重复的 id 也算不一致
		delete(set, id)
	}
	return true
}

func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
