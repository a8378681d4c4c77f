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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCV_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cv      CV
		wantErr bool
	}{
		{
			name: "合法",
			cv: CV{
				Personal:   PersonalInfo{FullName: "张三"},
				Education:  []Education{{Institution: "清华大学"}},
				Experience: []Experience{{Title: "工程师", Company: "ecodeclub"}},
			},
		},
		{
			name:    "没有姓名",
			cv:      CV{Personal: PersonalInfo{FullName: " "}},
			wantErr: true,
		},
		{
			name: "工作经历没有公司",
			cv: CV{
				Personal:   PersonalInfo{FullName: "张三"},
				Experience: []Experience{{Title: "工程师"}},
			},
			wantErr: true,
		},
		{
			name: "证书没有名字",
			cv: CV{
				Personal:       PersonalInfo{FullName: "张三"},
				Certifications: []Certification{{Issuer: "CNCF"}},
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cv.Validate()
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func TestCV_Normalize(t *testing.T) {
	cv := CV{
		Personal: PersonalInfo{FullName: " 张三 "},
		Skills:   []string{"Go", " ", " MySQL "},
	}.Normalize()
	assert.Equal(t, "张三", cv.Personal.FullName)
	assert.Equal(t, []string{"Go", "MySQL"}, cv.Skills)
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, "2020 - 2024", Period("2020", "2024"))
	assert.Equal(t, "2020 - 至今", Period("2020", ""))
	assert.Equal(t, "至今", Period("", ""))
}
