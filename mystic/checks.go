// Copyright 2025 MysticCore Authors
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

package mystic

// ChecksEnabled reports whether debug precondition checks are compiled into
// this build. It is true only when built with the "mysticdebug" tag.
//
// The Checked* functions perform their guards regardless of build flavor.
func ChecksEnabled() bool {
	return debugChecks
}

// check panics with msg when cond is false. It is compiled to a no-op unless
// the "mysticdebug" build tag is set; debugChecks is a constant, so the
// compiler removes the guard entirely in default builds.
func check(cond bool, msg string) {
	if debugChecks && !cond {
		panic(msg)
	}
}
