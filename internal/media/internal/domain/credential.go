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

// Credential 上传答题附件用的临时密钥，只能写 Key 这一个对象
type Credential struct {
	SecretId     string
	SecretKey    string
	SessionToken string
	StartTime    int64
	ExpiredTime  int64
	Bucket       string
	Region       string
	// 对象的完整路径
	Key string
	// 上传完成之后写进答案的地址
	URL string
}
