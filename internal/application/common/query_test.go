package common

import (
	"encoding/json"
	"testing"

	"github.com/schoolms/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuery_Filter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := ListQuery{}.Filter()

		assert.Equal(t, 1, f.Page)
		assert.Equal(t, DefaultPageSize, f.PageSize)
		assert.Equal(t, "id", f.OrderBy)
		assert.Equal(t, "desc", f.OrderDir)
		assert.Nil(t, f.SchoolID)
	})

	t.Run("copies filters and clamps page size", func(t *testing.T) {
		f := ListQuery{PageSize: 1000, OrderBy: "name", Filters: map[string]any{"status": 1}}.Filter()

		assert.Equal(t, MaxPageSize, f.PageSize)
		assert.Equal(t, "name", f.OrderBy)
		assert.Equal(t, 1, f.Filters["status"])
	})
}

func TestReadQuery_Options(t *testing.T) {
	tests := []struct {
		name string
		q    ReadQuery
		want shared.QueryOptions
	}{
		{"default", ReadQuery{}, shared.QueryOptions{}},
		{"with trashed", ReadQuery{Trashed: shared.IncludeTrashed}, shared.QueryOptions{Trashed: shared.IncludeTrashed}},
		{"only trashed", ReadQuery{Trashed: shared.OnlyTrashedRows}, shared.QueryOptions{Trashed: shared.OnlyTrashedRows}},
		{"relations", ReadQuery{With: []string{"user"}}, shared.QueryOptions{With: []string{"user"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ApplyQueryOptions(tt.q.Options()...))
		})
	}
}

func TestRelation_JSON(t *testing.T) {
	type payload struct {
		ID    int                `json:"id"`
		User  Relation[*string]  `json:"user,omitzero"`
		Items Relation[[]string] `json:"items,omitzero"`
	}

	out, err := json.Marshal(payload{ID: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(out))

	out, err = json.Marshal(payload{ID: 1, User: Loaded[*string](nil), Items: Loaded([]string{})})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"user":null,"items":[]}`, string(out))

	v, ok := Loaded([]string{"a"}).Value()
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, v)
}

func TestRequested(t *testing.T) {
	assert.True(t, Requested([]string{" PayrollItems "}, "payrollitems"))
	assert.False(t, Requested(nil, "user"))
}

func TestNullablePath(t *testing.T) {
	assert.Nil(t, NullablePath(shared.NoAttachment))
	require.NotNil(t, NullablePath("/uploads/a.pdf"))
	assert.Equal(t, "/uploads/a.pdf", *NullablePath("/uploads/a.pdf"))
}
