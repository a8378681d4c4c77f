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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./job.go -package=daomocks -destination=mocks/job.mock.go JobDAO
type JobDAO interface {
	Create(ctx context.Context, j Job) (int64, error)
	// Update 只会更新属于 companyId 的职位
	Update(ctx context.Context, j Job) error
	UpdateStatus(ctx context.Context, id, companyId int64, status string) error
	Delete(ctx context.Context, id, companyId int64) error
	FindById(ctx context.Context, id int64) (Job, error)
	List(ctx context.Context, companyId int64, status string, offset, limit int) ([]Job, error)
	Count(ctx context.Context, companyId int64, status string) (int64, error)
	CountGroupByStatus(ctx context.Context, companyId int64) (map[string]int64, error)
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (dao *GORMJobDAO) Create(ctx context.Context, j Job) (int64, error) {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	err := dao.db.WithContext(ctx).Create(&j).Error
	return j.Id, err
}

func (dao *GORMJobDAO) Update(ctx context.Context, j Job) error {
	res := dao.db.WithContext(ctx).Model(&Job{}).
		Where("id = ? AND company_id = ?", j.Id, j.CompanyId).
		Updates(map[string]any{
			"title":        j.Title,
			"description":  j.Description,
			"requirements": j.Requirements,
			"location":     j.Location,
			"type":         j.Type,
			"salary":       j.Salary,
			"status":       j.Status,
			"utime":        time.Now().UnixMilli(),
		})
	return dao.affected(res)
}

func (dao *GORMJobDAO) UpdateStatus(ctx context.Context, id, companyId int64, status string) error {
	res := dao.db.WithContext(ctx).Model(&Job{}).
		Where("id = ? AND company_id = ?", id, companyId).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	return dao.affected(res)
}

func (dao *GORMJobDAO) Delete(ctx context.Context, id, companyId int64) error {
	res := dao.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyId).
		Delete(&Job{})
	return dao.affected(res)
}

func (dao *GORMJobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var j Job
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	return j, err
}

func (dao *GORMJobDAO) List(ctx context.Context, companyId int64, status string, offset, limit int) ([]Job, error) {
	var res []Job
	err := dao.filter(ctx, companyId, status).
		Order("utime DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMJobDAO) Count(ctx context.Context, companyId int64, status string) (int64, error) {
	var cnt int64
	err := dao.filter(ctx, companyId, status).Model(&Job{}).Count(&cnt).Error
	return cnt, err
}

func (dao *GORMJobDAO) CountGroupByStatus(ctx context.Context, companyId int64) (map[string]int64, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}
	err := dao.filter(ctx, companyId, "").Model(&Job{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[string]int64, len(rows))
	for _, r := range rows {
		res[r.Status] = r.Cnt
	}
	return res, nil
}

// 0 和空字符串表示不过滤
func (dao *GORMJobDAO) filter(ctx context.Context, companyId int64, status string) *gorm.DB {
	db := dao.db.WithContext(ctx)
	if companyId > 0 {
		db = db.Where("company_id = ?", companyId)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return db
}

// 没有命中任何行说明不存在或者不属于该公司
func (dao *GORMJobDAO) affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
