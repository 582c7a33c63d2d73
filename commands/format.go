// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"strconv"
	"strings"
)

// Null is printed for a search that found nothing
const Null = "NULL"

// FormatKey renders a point lookup result
func FormatKey(key int, found bool) string {
	if !found {
		return Null
	}
	return strconv.Itoa(key)
}

// FormatKeys renders a range lookup result as comma-joined keys with no
// brackets or spaces, e.g. "3,4,5"
func FormatKeys(keys []int) string {
	if len(keys) == 0 {
		return Null
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, ",")
}
