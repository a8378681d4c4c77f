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

type Role string

const (
	RoleCompany   Role = "company"
	RoleCandidate Role = "candidate"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleCompany, RoleCandidate, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	Id       int64
	Email    string
	FullName string
	Role     Role
	// 只有公司账号才有
	CompanyName string
	Ctime       int64
}

func (u User) DisplayName() string {
	if u.Role == RoleCompany && u.CompanyName != "" {
		return u.CompanyName
	}
	return u.FullName
}
