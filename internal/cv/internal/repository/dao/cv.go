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
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./cv.go -package=daomocks -destination=mocks/cv.mock.go CVDAO
type CVDAO interface {
	// Upsert 按照 uid 覆盖
	Upsert(ctx context.Context, cv CV) error
	FindByUid(ctx context.Context, uid int64) (CV, error)
}

type GORMCVDAO struct {
	db *egorm.Component
}

func NewGORMCVDAO(db *egorm.Component) CVDAO {
	return &GORMCVDAO{db: db}
}

func (d *GORMCVDAO) Upsert(ctx context.Context, cv CV) error {
	now := time.Now().UnixMilli()
	cv.Ctime, cv.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "email", "phone", "address", "summary",
			"education", "experience", "skills", "languages", "certifications",
			"utime",
		}),
	}).Create(&cv).Error
}

func (d *GORMCVDAO) FindByUid(ctx context.Context, uid int64) (CV, error) {
	var cv CV
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&cv).Error
	return cv, err
}
