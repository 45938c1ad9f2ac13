package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/hr-screener/internal/types"
)

func TestRoleKeywordMap_SingleKeywordMatch(t *testing.T) {
	m := NewRoleKeywordMap(
		RoleMapping{Role: "role-a", Keywords: []string{"react"}},
		RoleMapping{Role: "role-b", Keywords: []string{"redux"}},
	)

	// Only the later-registered mapping matches, so it wins outright.
	assert.Equal(t, "role-b", m.Detect("building apps with redux"))
}

func TestRoleKeywordMap_MostMatchesWins(t *testing.T) {
	m := NewRoleKeywordMap(
		RoleMapping{Role: "react-developer", Keywords: []string{"react", "redux", "jsx"}},
		RoleMapping{Role: "web-developer", Keywords: []string{"html", "css", "javascript", "backend"}},
	)

	assert.Equal(t, "react-developer", m.Detect("react redux jsx and some html"))
}

func TestRoleKeywordMap_TieBreaksToEarliestRegistered(t *testing.T) {
	m := NewRoleKeywordMap(
		RoleMapping{Role: "role-a", Keywords: []string{"react"}},
		RoleMapping{Role: "role-b", Keywords: []string{"redux"}},
	)

	// One match each; registration order decides.
	assert.Equal(t, "role-a", m.Detect("react and redux"))
}

func TestRoleKeywordMap_NoMatchYieldsUnknown(t *testing.T) {
	m := DefaultRoleKeywords()

	assert.Equal(t, types.RoleUnknown, m.Detect("gardening and carpentry"))
}

func TestRoleKeywordMap_CaseInsensitive(t *testing.T) {
	m := NewRoleKeywordMap(RoleMapping{Role: "react-developer", Keywords: []string{"React", "Redux"}})

	assert.Equal(t, "react-developer", m.Detect("REACT and rEdUx everywhere"))
}

func TestRoleKeywordMap_NilAndEmpty(t *testing.T) {
	var m *RoleKeywordMap
	assert.Equal(t, types.RoleUnknown, m.Detect("react"))

	empty := NewRoleKeywordMap()
	assert.Equal(t, types.RoleUnknown, empty.Detect("react"))
	assert.Equal(t, types.RoleUnknown, DefaultRoleKeywords().Detect(""))
}
