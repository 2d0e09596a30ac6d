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

package restutil

import (
	"net/http"
	"sort"
	"strings"

	"github.com/ant0ine/go-json-rest/rest"
)

const (
	HttpHeaderAllow string = "Allow"
)

type CreateOptionsHandler func(methods ...string) rest.HandlerFunc

// NewOptionsHandler answers OPTIONS requests with an Allow header listing
// methods plus OPTIONS itself, sorted and deduplicated.
func NewOptionsHandler(methods ...string) rest.HandlerFunc {
	allowed := AllowedMethods(methods...)
	header := strings.Join(allowed, ", ")
	return func(w rest.ResponseWriter, r *rest.Request) {
		w.Header().Set(HttpHeaderAllow, header)
		w.WriteHeader(http.StatusNoContent)
	}
}

// AllowedMethods returns the sorted set of methods, always including
// OPTIONS.
func AllowedMethods(methods ...string) []string {
	set := map[string]struct{}{http.MethodOptions: {}}
	for _, method := range methods {
		set[strings.ToUpper(method)] = struct{}{}
	}
	allowed := make([]string, 0, len(set))
	for method := range set {
		allowed = append(allowed, method)
	}
	sort.Strings(allowed)
	return allowed
}

// AutogenOptionsRoutes adds an OPTIONS route for every path of routes.
// OPTIONS routes follow the input routes, in order of first appearance of
// their path.
func AutogenOptionsRoutes(createHandler CreateOptionsHandler, routes ...*rest.Route) []*rest.Route {
	var paths []string
	methodGroups := make(map[string][]string, len(routes))
	for _, route := range routes {
		if _, ok := methodGroups[route.PathExp]; !ok {
			paths = append(paths, route.PathExp)
		}
		methodGroups[route.PathExp] = append(methodGroups[route.PathExp], route.HttpMethod)
	}

	out := make([]*rest.Route, 0, len(routes)+len(paths))
	out = append(out, routes...)
	for _, path := range paths {
		out = append(out, rest.Options(path, createHandler(methodGroups[path]...)))
	}
	return out
}
