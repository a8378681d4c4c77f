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

package dao

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/olivere/elastic/v7"
)

const JobIndexName = "job_index"

//go:generate mockgen -source=./job_es.go -package=daomocks -destination=mocks/job_es.mock.go JobSearchDAO
type JobSearchDAO interface {
	Index(ctx context.Context, doc JobDoc) error
	Delete(ctx context.Context, id int64) error
	// Search 在标题、描述、要求、地点里面搜索，只返回 status 的职位
	Search(ctx context.Context, keywords, status string, offset, limit int) ([]JobDoc, error)
}

type JobElasticDAO struct {
	client *elastic.Client
	index  string
	// 列名 => 权重
	cols map[string]float64
}

func NewJobElasticDAO(client *elastic.Client) JobSearchDAO {
	return &JobElasticDAO{
		client: client,
		index:  JobIndexName,
		cols: map[string]float64{
			"title":        10,
			"requirements": 4,
			"location":     3,
			"description":  2,
		},
	}
}

func (dao *JobElasticDAO) Index(ctx context.Context, doc JobDoc) error {
	_, err := dao.client.Index().
		Index(dao.index).
		Id(strconv.FormatInt(doc.Id, 10)).
		BodyJson(doc).
		Do(ctx)
	return err
}

func (dao *JobElasticDAO) Delete(ctx context.Context, id int64) error {
	_, err := dao.client.Delete().
		Index(dao.index).
		Id(strconv.FormatInt(id, 10)).
		Do(ctx)
	if elastic.IsNotFound(err) {
		return nil
	}
	return err
}

func (dao *JobElasticDAO) Search(ctx context.Context, keywords, status string, offset, limit int) ([]JobDoc, error) {
	fields := make([]string, 0, len(dao.cols))
	for col, boost := range dao.cols {
		fields = append(fields, col+"^"+strconv.FormatFloat(boost, 'f', -1, 64))
	}
	query := elastic.NewBoolQuery().
		Must(elastic.NewMultiMatchQuery(keywords, fields...)).
		Filter(elastic.NewTermQuery("status", status))
	resp, err := dao.client.Search(dao.index).
		Query(query).
		From(offset).
		Size(limit).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]JobDoc, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc JobDoc
		err = json.Unmarshal(hit.Source, &doc)
		if err != nil {
			return nil, err
		}
		res = append(res, doc)
	}
	return res, nil
}
