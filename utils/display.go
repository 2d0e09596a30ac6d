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
	"strings"
)

var displayReplacer = strings.NewReplacer(
	"\u00a0", " ",
	"\u2013", "-",
	"\u2014", "-",
)

// NormalizeDisplay makes dataset text safe to copy: non-breaking spaces
// become spaces, en and em dashes become hyphens and whitespace runs are
// collapsed.
func NormalizeDisplay(s string) string {
	return strings.Join(strings.Fields(displayReplacer.Replace(s)), " ")
}
