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

package snowflake

import (
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var _ gorm.Plugin = (*IDPlugin)(nil)

// IDPlugin 在插入之前给整数主键填上雪花 ID。
// 已经设置了主键的行不会被覆盖。
type IDPlugin struct {
	gen Generator
	// 表名 => 业务
	tables map[string]Biz
}

func NewIDPlugin(gen Generator, tables map[string]Biz) *IDPlugin {
	return &IDPlugin{gen: gen, tables: tables}
}

func (p *IDPlugin) Name() string {
	return "SnowflakeIDPlugin"
}

func (p *IDPlugin) Initialize(db *gorm.DB) error {
	return db.Callback().Create().Before("gorm:create").
		Register("snowflake:assign_id", p.assign)
}

func (p *IDPlugin) assign(db *gorm.DB) {
	if db.Error != nil || db.Statement.Schema == nil {
		return
	}
	sch := db.Statement.Schema
	field := sch.PrioritizedPrimaryField
	if field == nil || field.DataType != schema.Int {
		return
	}
	biz, ok := p.tables[sch.Table]
	if !ok {
		biz = BizDefault
	}
	rv := db.Statement.ReflectValue
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			p.setIfZero(db, field, biz, reflect.Indirect(rv.Index(i)))
		}
	case reflect.Struct:
		p.setIfZero(db, field, biz, rv)
	}
}

func (p *IDPlugin) setIfZero(db *gorm.DB, field *schema.Field, biz Biz, rv reflect.Value) {
	ctx := db.Statement.Context
	if _, zero := field.ValueOf(ctx, rv); !zero {
		return
	}
	id, err := p.gen.Generate(biz)
	if err != nil {
		_ = db.AddError(err)
		return
	}
	if err = field.Set(ctx, rv, id.Int64()); err != nil {
		_ = db.AddError(err)
	}
}
