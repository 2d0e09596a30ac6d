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

package dataset

import (
	"strconv"
	"strings"
	"unicode"
)

var dashReplacer = strings.NewReplacer("\u2013", "-", "\u2014", "-")

func stripNBSP(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
}

// ParseIntPrefix returns the first run of digits in s, e.g. 2 for "2 (5G)".
func ParseIntPrefix(s string) (int, bool) {
	start := strings.IndexFunc(s, unicode.IsDigit)
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseMbps reads throughput strings such as "300 Mbps" or "2.5 Gbps" as
// Mbps. Thousands separators inside the number are skipped. A unit starting
// with "g" scales by 1000.
func ParseMbps(s string) (float64, bool) {
	s = stripNBSP(s)
	var (
		num     strings.Builder
		dotSeen bool
		i       int
	)
	for i = 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			num.WriteByte(c)
			continue
		case c == '.' && !dotSeen && num.Len() > 0:
			dotSeen = true
			num.WriteByte(c)
			continue
		case c == ',' && num.Len() > 0 && i+1 < len(s) &&
			s[i+1] >= '0' && s[i+1] <= '9':
			continue
		}
		if num.Len() > 0 {
			break
		}
	}
	if num.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(num.String(), "."), 64)
	if err != nil {
		return 0, false
	}
	unit := strings.ToLower(strings.TrimSpace(s[i:]))
	if strings.HasPrefix(unit, "g") {
		v *= 1000
	}
	return v, true
}

// ParseUsersRange reads "1-60" style ranges; a single number yields
// lo == hi.
func ParseUsersRange(s string) (lo, hi int, ok bool) {
	s = dashReplacer.Replace(stripNBSP(s))
	var nums []int
	for _, part := range strings.Split(s, "-") {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, part)
		if digits == "" {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	switch len(nums) {
	case 0:
		return 0, 0, false
	case 1:
		return nums[0], nums[0], true
	}
	lo, hi = nums[0], nums[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// YesNo maps values starting with y/n to "Yes"/"No" and leaves others
// untouched.
func YesNo(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(t, "y"):
		return "Yes"
	case strings.HasPrefix(t, "n"):
		return "No"
	}
	return s
}
