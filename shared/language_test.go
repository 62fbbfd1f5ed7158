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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLanguage(t *testing.T) {
	t.Run("should fall back to english", func(t *testing.T) {
		assert.Equal(t, "en", MatchLanguage(""))
		assert.Equal(t, "en", MatchLanguage("fr-FR,fr;q=0.9"))
	})

	t.Run("should pick spanish from an accept language header", func(t *testing.T) {
		assert.Equal(t, "es", MatchLanguage("es-MX,es;q=0.9,en;q=0.8"))
		assert.Equal(t, "es", MatchLanguage("es"))
	})

	t.Run("should respect the order of preference", func(t *testing.T) {
		assert.Equal(t, "en", MatchLanguage("en-US,es;q=0.5"))
	})
}
