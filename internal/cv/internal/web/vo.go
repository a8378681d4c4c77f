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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/cv/internal/domain"
)

type CV struct {
	Personal       PersonalInfo    `json:"personalInfo"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []string        `json:"skills"`
	Languages      []Language      `json:"languages"`
	Certifications []Certification `json:"certifications"`
	Utime          int64           `json:"utime,omitempty"`
}

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Summary  string `json:"summary"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Language struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

func newCV(cv domain.CV) CV {
	return CV{
		Personal: PersonalInfo(cv.Personal),
		Education: slice.Map(cv.Education, func(idx int, src domain.Education) Education {
			return Education(src)
		}),
		Experience: slice.Map(cv.Experience, func(idx int, src domain.Experience) Experience {
			return Experience(src)
		}),
		Skills: cv.Skills,
		Languages: slice.Map(cv.Languages, func(idx int, src domain.Language) Language {
			return Language(src)
		}),
		Certifications: slice.Map(cv.Certifications, func(idx int, src domain.Certification) Certification {
			return Certification(src)
		}),
		Utime: cv.Utime,
	}
}

func (c CV) toDomain(uid int64) domain.CV {
	return domain.CV{
		Uid:      uid,
		Personal: domain.PersonalInfo(c.Personal),
		Education: slice.Map(c.Education, func(idx int, src Education) domain.Education {
			return domain.Education(src)
		}),
		Experience: slice.Map(c.Experience, func(idx int, src Experience) domain.Experience {
			return domain.Experience(src)
		}),
		Skills: c.Skills,
		Languages: slice.Map(c.Languages, func(idx int, src Language) domain.Language {
			return domain.Language(src)
		}),
		Certifications: slice.Map(c.Certifications, func(idx int, src Certification) domain.Certification {
			return domain.Certification(src)
		}),
	}
}

type SaveReq struct {
	CV CV `json:"cv"`
}
