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
	"embed"
	"fmt"
	"html/template"

	"github.com/ecodeclub/hirebook/internal/cv/internal/domain"
)

//go:embed templates
var templates embed.FS

var cvTemplate = template.Must(template.New("cv.html").
	Funcs(template.FuncMap{"period": domain.Period}).
	ParseFS(templates, "templates/cv.html"))

// HTML 渲染成一个完整的 HTML 文档，用户输入都会被转义
func HTML(cv domain.CV) (string, error) {
	var buf bytes.Buffer
	err := cvTemplate.Execute(&buf, cv)
	if err != nil {
		return "", fmt.Errorf("渲染简历失败: %w", err)
	}
	return buf.String(), nil
}
