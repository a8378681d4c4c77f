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
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 邮箱已经被注册
var ErrUserDuplicate = errors.New("用户已经注册")

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindById(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	List(ctx context.Context, role string, offset, limit int) ([]User, error)
	Count(ctx context.Context, role string) (int64, error)
	CountGroupByRole(ctx context.Context) (map[string]int64, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	res := ud.db.WithContext(ctx).Model(&u).Where("id = ?", u.Id).Updates(&u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) List(ctx context.Context, role string, offset, limit int) ([]User, error) {
	var us []User
	err := ud.roleScope(ctx, role).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) Count(ctx context.Context, role string) (int64, error) {
	var cnt int64
	err := ud.roleScope(ctx, role).Model(&User{}).Count(&cnt).Error
	return cnt, err
}

func (ud *GORMUserDAO) CountGroupByRole(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Role string
		Cnt  int64
	}
	err := ud.db.WithContext(ctx).Model(&User{}).
		Select("role, COUNT(*) AS cnt").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[string]int64, len(rows))
	for _, r := range rows {
		res[r.Role] = r.Cnt
	}
	return res, nil
}

// role 为空的时候不过滤
func (ud *GORMUserDAO) roleScope(ctx context.Context, role string) *gorm.DB {
	db := ud.db.WithContext(ctx)
	if role != "" {
		db = db.Where("role = ?", role)
	}
	return db
}

type User struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Email       string `gorm:"type:varchar(256);uniqueIndex"`
	FullName    string `gorm:"type:varchar(128)"`
	Role        string `gorm:"type:varchar(16);index"`
	CompanyName string `gorm:"type:varchar(256)"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
