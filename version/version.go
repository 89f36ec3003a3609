// This file is part of Gopher Advance.
//
// Gopher Advance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher Advance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher Advance.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the name and release number of the application.
package version

import "runtime/debug"

// ApplicationName is the name of the application.
const ApplicationName = "gopheradvance"

// number is updated on release. the development value is "development". the
// revision hash of a binary built from a git checkout is not folded into it
// but returned separately by Version().
const number = "development"

// Version returns the version string and the source revision (if known).
func Version() (string, string) {
	rev := "unknown revision"

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				rev = s.Value
			}
		}
	}

	return number, rev
}
