// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package shared

import (
	"golang.org/x/text/language"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.Spanish,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// MatchLanguage maps an Accept-Language header or a language code to one of the supported
// notification languages. English is the fallback.
func MatchLanguage(preferences ...string) string {
	tag, _ := language.MatchStrings(languageMatcher, preferences...)
	base, _ := tag.Base()
	switch base.String() {
	case "es":
		return "es"
	default:
		return "en"
	}
}
