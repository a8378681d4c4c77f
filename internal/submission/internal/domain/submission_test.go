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

func TestSubmission_Percentage(t *testing.T) {
	testCases := []struct {
		name         string
		s            Submission
		passingScore int
		wantPct      float64
		wantPctOK    bool
		wantPassed   bool
		wantPassedOK bool
	}{
		{
			name: "25 / 30",
			s: Submission{
				TotalScore: ptr(25),
				MaxScore:   ptr(30),
			},
			passingScore: 80,
			wantPct:      83.33,
			wantPctOK:    true,
			wantPassed:   true,
			wantPassedOK: true,
		},
		{
			name: "没有及格线",
			s: Submission{
				TotalScore: ptr(10),
				MaxScore:   ptr(30),
			},
			wantPct:   33.33,
			wantPctOK: true,
		},
		{
			name:         "还没有打分",
			s:            Submission{},
			passingScore: 60,
		},
		{
			name: "满分为 0",
			s: Submission{
				TotalScore: ptr(0),
				MaxScore:   ptr(0),
			},
			passingScore: 60,
		},
		{
			name: "没有及格",
			s: Submission{
				TotalScore: ptr(5),
				MaxScore:   ptr(10),
			},
			passingScore: 60,
			wantPct:      50,
			wantPctOK:    true,
			wantPassedOK: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pct, ok := tc.s.Percentage()
			assert.Equal(t, tc.wantPctOK, ok)
			assert.Equal(t, tc.wantPct, pct)
			passed, ok := tc.s.Passed(tc.passingScore)
			assert.Equal(t, tc.wantPassedOK, ok)
			assert.Equal(t, tc.wantPassed, passed)
		})
	}
}

func TestSubmission_Deadline(t *testing.T) {
	s := Submission{StartedAt: 1000}
	assert.Equal(t, int64(0), s.Deadline(0))
	assert.Equal(t, int64(1000+30*60*1000), s.Deadline(30))
}

func TestDecision(t *testing.T) {
	assert.False(t, Decision("").Recordable())
	assert.False(t, DecisionPending.Recordable())
	assert.False(t, Decision("hired").Recordable())
	assert.True(t, DecisionAccepted.Recordable())
	assert.Equal(t, DecisionPending, Submission{}.EffectiveDecision())
	assert.Equal(t, DecisionShortlisted, Submission{Decision: DecisionShortlisted}.EffectiveDecision())
}

func ptr(v float64) *float64 {
	return &v
}
