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
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/ecodeclub/hirebook/internal/cv/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCV() domain.CV {
	return domain.CV{
		Uid: 1,
		Personal: domain.PersonalInfo{
			FullName: "张三",
			Email:    "zhangsan@example.com",
			Summary:  "<script>alert(1)</script>",
		},
		Education: []domain.Education{
			{Degree: "本科", Institution: "清华大学", StartDate: "2016", EndDate: "2020"},
		},
		Experience: []domain.Experience{
			{Title: "Go 工程师", Company: "ecodeclub", StartDate: "2020"},
		},
		Skills:    []string{"Go", "MySQL"},
		Languages: []domain.Language{{Language: "英语", Level: "CET-6"}},
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML(testCV())
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>张三</h1>")
	assert.Contains(t, html, "2020 - 至今")
	assert.Contains(t, html, "英语（CET-6）")
	// 用户输入需要转义
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
	// 没有证书就不输出这一节
	assert.NotContains(t, html, "<h2>证书</h2>")
}

func TestDOCX(t *testing.T) {
	data, err := DOCX(testCV())
	require.NoError(t, err)
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var content string
	for _, f := range reader.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		content = string(raw)
	}
	assert.Contains(t, content, "张三")
	assert.Contains(t, content, "清华大学 本科 2016 - 2020")
	assert.Contains(t, content, "Go、MySQL")
	assert.NotContains(t, content, "{fullName}")
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "a c", compact("a", " ", "c"))
	assert.Equal(t, "", compact())
}
