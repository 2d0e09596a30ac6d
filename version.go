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

package main

// Build information, set with -ldflags "-X main.Tag=..." and friends.
var (
	// The commit of the current build.
	Commit string

	// The tag of the current build, if any.
	Tag string

	// The branch being built; for pull requests the target branch.
	Branch string

	// The number of the current build, e.g. "4".
	BuildNumber string
)

// Version returns the short version: the tag, branch_commit or "unknown".
func Version() string {
	switch {
	case Tag != "":
		return Tag
	case Commit != "" && Branch != "":
		return Branch + "_" + Commit
	}
	return "unknown"
}

func CreateVersionString() string {
	out := "Version: " + Version()
	if BuildNumber != "" {
		out = out + " BuildNumber: " + BuildNumber
	}
	return out
}
