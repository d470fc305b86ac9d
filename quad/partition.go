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

// A Span is a half-open range [Lo, Hi) of subinterval indices assigned
// to one worker.
type Span struct {
	Lo, Hi int64
}

// Partition splits the n subintervals into w contiguous spans. Every
// span gets n/w subintervals; the remainder of an uneven split lands on
// the last span, which therefore holds at most w-1 extras. The spans
// cover [0, n) exactly and do not overlap.
func Partition(n int64, w int) []Span {
	spans := make([]Span, w)
	per := n / int64(w)
	for j := range spans {
		spans[j].Lo = int64(j) * per
		spans[j].Hi = int64(j+1) * per
	}
	spans[w-1].Hi = n
	return spans
}
