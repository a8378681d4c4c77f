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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/hirebook/internal/cv/internal/domain"
	"github.com/ecodeclub/hirebook/internal/cv/internal/repository"
	"github.com/ecodeclub/hirebook/internal/cv/internal/service/render"
	"github.com/ecodeclub/hirebook/internal/pkg/pdf"
)

var (
	ErrCVNotFound = errors.New("简历不存在")
	ErrInvalidCV  = errors.New("简历信息不合法")
)

//go:generate mockgen -source=./cv.go -package=svcmocks -destination=mocks/cv.mock.go Service
type Service interface {
	// Save 每个用户只有一份，重复保存直接覆盖
	Save(ctx context.Context, cv domain.CV) (domain.CV, error)
	Get(ctx context.Context, uid int64) (domain.CV, error)
	ExportPDF(ctx context.Context, uid int64) ([]byte, error)
	ExportDOCX(ctx context.Context, uid int64) ([]byte, error)
}

type cvService struct {
	repo      repository.CVRepository
	converter pdf.Converter
}

func NewService(repo repository.CVRepository, converter pdf.Converter) Service {
	return &cvService{repo: repo, converter: converter}
}

func (s *cvService) Save(ctx context.Context, cv domain.CV) (domain.CV, error) {
	cv = cv.Normalize()
	if err := cv.Validate(); err != nil {
		return domain.CV{}, fmt.Errorf("%w: %w", ErrInvalidCV, err)
	}
	err := s.repo.Save(ctx, cv)
	if err != nil {
		return domain.CV{}, err
	}
	return s.repo.FindByUid(ctx, cv.Uid)
}

func (s *cvService) Get(ctx context.Context, uid int64) (domain.CV, error) {
	cv, err := s.repo.FindByUid(ctx, uid)
	if errors.Is(err, repository.ErrCVNotFound) {
		return domain.CV{}, fmt.Errorf("%w: uid %d", ErrCVNotFound, uid)
	}
	return cv, err
}

func (s *cvService) ExportPDF(ctx context.Context, uid int64) ([]byte, error) {
	cv, err := s.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	html, err := render.HTML(cv)
	if err != nil {
		return nil, err
	}
	return s.converter.ConvertHTMLToPDF(ctx, html, pdf.PaperA4, pdf.MarginsNormal)
}

func (s *cvService) ExportDOCX(ctx context.Context, uid int64) ([]byte, error) {
	cv, err := s.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	return render.DOCX(cv)
}
