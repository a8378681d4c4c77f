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

import "github.com/ecodeclub/hirebook/internal/user/internal/domain"

type Profile struct {
	Id          int64  `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName,omitempty"`
	Ctime       int64  `json:"ctime"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:          u.Id,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role.String(),
		CompanyName: u.CompanyName,
		Ctime:       u.Ctime,
	}
}

type RegisterReq struct {
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName"`
}

type LoginReq struct {
	Email string `json:"email"`
}

type EditReq struct {
	FullName    string `json:"fullName"`
	CompanyName string `json:"companyName"`
}

type ListReq struct {
	Role   string `json:"role"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type ProfileList struct {
	Total int64     `json:"total"`
	List  []Profile `json:"list"`
}
