// Copyright 2024 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDisplay(t *testing.T) {
	t.Parallel()
	testCases := map[string]struct {
		in  string
		out string
	}{
		"plain":      {in: "Mobile Routers", out: "Mobile Routers"},
		"nbsp":       {in: "300\u00a0Mbps", out: "300 Mbps"},
		"en dash":    {in: "1\u201360", out: "1-60"},
		"em dash":    {in: "a\u2014b", out: "a-b"},
		"whitespace": {in: "  2 x   GbE \n WAN ", out: "2 x GbE WAN"},
		"empty":      {in: "", out: ""},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.out, NormalizeDisplay(tc.in))
		})
	}
}
