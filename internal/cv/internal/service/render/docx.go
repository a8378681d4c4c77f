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

package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/cv/internal/domain"
	"github.com/lukasjarosch/go-docx"
)

// 多条记录放在同一个段落里面
const itemSeparator = "；"

// DOCX 用内嵌的模板生成 Word 文档
func DOCX(cv domain.CV) ([]byte, error) {
	tpl, err := templates.ReadFile("templates/cv.docx")
	if err != nil {
		return nil, fmt.Errorf("读取模版失败: %w", err)
	}
	doc, err := docx.OpenBytes(tpl)
	if err != nil {
		return nil, fmt.Errorf("打开模版docx文件失败: %w", err)
	}
	defer doc.Close()
	err = doc.ReplaceAll(placeholders(cv))
	if err != nil {
		return nil, fmt.Errorf("替换元素失败: %w", err)
	}
	var buf bytes.Buffer
	err = doc.Write(&buf)
	if err != nil {
		return nil, fmt.Errorf("生成docx失败: %w", err)
	}
	return buf.Bytes(), nil
}

func placeholders(cv domain.CV) docx.PlaceholderMap {
	return docx.PlaceholderMap{
		"fullName": cv.Personal.FullName,
		"email":    cv.Personal.Email,
		"phone":    cv.Personal.Phone,
		"address":  cv.Personal.Address,
		"summary":  cv.Personal.Summary,
		"education": join(slice.Map(cv.Education, func(idx int, src domain.Education) string {
			return compact(src.Institution, src.Degree, domain.Period(src.StartDate, src.EndDate), src.Description)
		})),
		"experience": join(slice.Map(cv.Experience, func(idx int, src domain.Experience) string {
			return compact(src.Title, src.Company, domain.Period(src.StartDate, src.EndDate), src.Description)
		})),
		"skills": strings.Join(cv.Skills, "、"),
		"languages": join(slice.Map(cv.Languages, func(idx int, src domain.Language) string {
			return compact(src.Language, src.Level)
		})),
		"certifications": join(slice.Map(cv.Certifications, func(idx int, src domain.Certification) string {
			return compact(src.Name, src.Issuer, src.Date)
		})),
	}
}

func join(items []string) string {
	return strings.Join(items, itemSeparator)
}

// compact 去掉空字段之后用空格连接
func compact(fields ...string) string {
	res := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			res = append(res, f)
		}
	}
	return strings.Join(res, " ")
}
