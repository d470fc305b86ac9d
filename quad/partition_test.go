// Copyright 2023 The Quadpi Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package quad

import (
	"fmt"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		n     int64
		w     int
		spans []Span
	}{
		{n: 20000, w: 8, spans: []Span{
			{0, 2500}, {2500, 5000}, {5000, 7500}, {7500, 10000},
			{10000, 12500}, {12500, 15000}, {15000, 17500}, {17500, 20000},
		}},
		{n: 10, w: 3, spans: []Span{{0, 3}, {3, 6}, {6, 10}}},
		{n: 5, w: 5, spans: []Span{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}},
		{n: 7, w: 2, spans: []Span{{0, 3}, {3, 7}}},
		{n: 1, w: 1, spans: []Span{{0, 1}}},
		// Fewer subintervals than workers: the early spans are empty and
		// the whole range lands on the last one.
		{n: 1, w: 4, spans: []Span{{0, 0}, {0, 0}, {0, 0}, {0, 1}}},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d/%d", tc.n, tc.w), func(t *testing.T) {
			spans := Partition(tc.n, tc.w)
			if len(spans) != len(tc.spans) {
				t.Fatalf("expected %d spans, got %d", len(tc.spans), len(spans))
			}
			for j := range spans {
				if spans[j] != tc.spans[j] {
					t.Fatalf("span %d: expected %v, got %v", j, tc.spans[j], spans[j])
				}
			}
		})
	}
}

// The spans must cover [0, n) exactly: contiguous, non-overlapping,
// anchored at 0 and ending at n.
func TestPartitionInvariants(t *testing.T) {
	cases := []struct {
		n int64
		w int
	}{
		{1, 1}, {1, 8}, {2, 3}, {100, 7}, {20000, 8}, {99, 10}, {65536, 13},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d/%d", tc.n, tc.w), func(t *testing.T) {
			spans := Partition(tc.n, tc.w)
			if spans[0].Lo != 0 {
				t.Fatalf("first span starts at %d", spans[0].Lo)
			}
			if spans[len(spans)-1].Hi != tc.n {
				t.Fatalf("last span ends at %d", spans[len(spans)-1].Hi)
			}
			var covered int64
			for j, sp := range spans {
				if sp.Lo > sp.Hi {
					t.Fatalf("span %d inverted: %v", j, sp)
				}
				if j > 0 && sp.Lo != spans[j-1].Hi {
					t.Fatalf("span %d not contiguous: %v after %v", j, sp, spans[j-1])
				}
				covered += sp.Hi - sp.Lo
			}
			if covered != tc.n {
				t.Fatalf("spans cover %d of %d", covered, tc.n)
			}
		})
	}
}
