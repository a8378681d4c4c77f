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

package domain

import (
	"errors"
	"strings"
)

// CV 每个用户一份
type CV struct {
	Id             int64
	Uid            int64
	Personal       PersonalInfo
	Education      []Education
	Experience     []Experience
	Skills         []string
	Languages      []Language
	Certifications []Certification
	Ctime          int64
	Utime          int64
}

type PersonalInfo struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	Summary  string
}

// Education 日期只做展示，格式不做限制
type Education struct {
	Degree      string
	Institution string
	StartDate   string
	EndDate     string
	Description string
}

type Experience struct {
	Title       string
	Company     string
	StartDate   string
	EndDate     string
	Description string
}

type Language struct {
	Language string
	Level    string
}

type Certification struct {
	Name   string
	Issuer string
	Date   string
}

func (c CV) Validate() error {
	if strings.TrimSpace(c.Personal.FullName) == "" {
		return errors.New("姓名不能为空")
	}
	for _, e := range c.Education {
		if strings.TrimSpace(e.Institution) == "" {
			return errors.New("学校不能为空")
		}
	}
	for _, e := range c.Experience {
		if strings.TrimSpace(e.Company) == "" || strings.TrimSpace(e.Title) == "" {
			return errors.New("公司和职位不能为空")
		}
	}
	for _, l := range c.Languages {
		if strings.TrimSpace(l.Language) == "" {
			return errors.New("语言不能为空")
		}
	}
	for _, cert := range c.Certifications {
		if strings.TrimSpace(cert.Name) == "" {
			return errors.New("证书名称不能为空")
		}
	}
	return nil
}

// Normalize 去掉空白的技能，其余字段去掉首尾空格
func (c CV) Normalize() CV {
	c.Personal.FullName = strings.TrimSpace(c.Personal.FullName)
	c.Personal.Email = strings.TrimSpace(c.Personal.Email)
	skills := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		s = strings.TrimSpace(s)
		if s != "" {
			skills = append(skills, s)
		}
	}
	c.Skills = skills
	return c
}

// Period 开始和结束时间，结束时间为空表示至今
func Period(start, end string) string {
	if end == "" {
		end = "至今"
	}
	if start == "" {
		return end
	}
	return start + " - " + end
}
