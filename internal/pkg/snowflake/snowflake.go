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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// Generator 按业务线生成 ID，同一个进程内不会重复
type Generator interface {
	Generate(biz Biz) (ID, error)
}

// Biz 占用 ID 里面的 5 个比特位，用来区分实体类型
type Biz uint

const (
	BizDefault Biz = iota
	BizUser
	BizJob
	BizAssessment
	BizSubmission
	BizCV
)

const (
	maxNode uint = 31
	maxBiz  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrUnknownBiz = errors.New("未知的业务")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Biz   | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

type NodeGenerator struct {
	nodes syncx.Map[Biz, *snowflake.Node]
}

// NewNodeGenerator nodeId 是当前实例的编号，最大 31
func NewNodeGenerator(nodeId uint) (*NodeGenerator, error) {
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w, node: %d", ErrExceedNode, nodeId)
	}
	res := &NodeGenerator{}
	for b := uint(0); b <= maxBiz; b++ {
		n, err := snowflake.NewNode(int64(b<<5 | nodeId))
		if err != nil {
			return nil, err
		}
		res.nodes.Store(Biz(b), n)
	}
	return res, nil
}

func (g *NodeGenerator) Generate(biz Biz) (ID, error) {
	n, ok := g.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w, biz: %d", ErrUnknownBiz, biz)
	}
	return ID(n.Generate()), nil
}

type ID int64

func (f ID) Biz() Biz {
	return Biz(snowflake.ID(f).Node() >> 5)
}

func (f ID) Node() uint {
	return uint(snowflake.ID(f).Node() & 0x1f)
}

func (f ID) Int64() int64 {
	return int64(f)
}
