package shared

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fillTarget struct {
	Name     string
	Note     *string
	Count    int
	Owner    uint64
	ParentID *uint64
	Active   bool
	Due      *time.Time
	Amount   decimal.Decimal
	Secret   string
}

func (f *fillTarget) fields() Fields {
	return Fields{
		"name":      StringField(&f.Name),
		"note":      NullableStringField(&f.Note),
		"count":     IntField(&f.Count),
		"owner":     Uint64Field(&f.Owner),
		"parent_id": NullableUint64Field(&f.ParentID),
		"active":    BoolField(&f.Active),
		"due":       DateField(&f.Due),
		"amount":    DecimalField(&f.Amount),
		"secret":    StringField(&f.Secret),
	}
}

var targetFillable = Fillable{"name", "note", "count", "owner", "parent_id", "active", "due", "amount"}

func TestFillable(t *testing.T) {
	t.Run("Allows only listed names", func(t *testing.T) {
		assert.True(t, targetFillable.Allows("name"))
		assert.False(t, targetFillable.Allows("secret"))
		assert.False(t, Fillable{}.Allows("name"))
	})

	t.Run("Filter drops unknown keys", func(t *testing.T) {
		out := Fillable{"a"}.Filter(Attributes{"a": 1, "b": 2})
		assert.Equal(t, Attributes{"a": 1}, out)
	})
}

func TestAssign(t *testing.T) {
	t.Run("converts loosely typed values", func(t *testing.T) {
		var f fillTarget
		err := Assign(Attributes{
			"name":      "Term 1",
			"note":      "remark",
			"count":     "08",
			"owner":     json.Number("42"),
			"parent_id": float64(7),
			"active":    "true",
			"due":       "2026-03-01",
			"amount":    "1250.50",
		}, targetFillable, f.fields())

		require.NoError(t, err)
		assert.Equal(t, "Term 1", f.Name)
		require.NotNil(t, f.Note)
		assert.Equal(t, "remark", *f.Note)
		assert.Equal(t, 8, f.Count)
		assert.Equal(t, uint64(42), f.Owner)
		require.NotNil(t, f.ParentID)
		assert.Equal(t, uint64(7), *f.ParentID)
		assert.True(t, f.Active)
		require.NotNil(t, f.Due)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *f.Due)
		assert.True(t, decimal.RequireFromString("1250.50").Equal(f.Amount))
	})

	t.Run("silently drops non-fillable keys", func(t *testing.T) {
		var f fillTarget
		err := Assign(Attributes{"name": "x", "secret": "leak", "unknown": 1}, targetFillable, f.fields())

		require.NoError(t, err)
		assert.Equal(t, "x", f.Name)
		assert.Empty(t, f.Secret)
	})

	t.Run("nil and blank clear nullable fields", func(t *testing.T) {
		note := "old"
		parent := uint64(3)
		f := fillTarget{Note: &note, ParentID: &parent}
		err := Assign(Attributes{"note": "  ", "parent_id": nil, "due": ""}, targetFillable, f.fields())

		require.NoError(t, err)
		assert.Nil(t, f.Note)
		assert.Nil(t, f.ParentID)
		assert.Nil(t, f.Due)
	})

	t.Run("reports conversion failures as invalid input", func(t *testing.T) {
		tests := []struct {
			name  string
			attrs Attributes
		}{
			{"non-numeric id", Attributes{"owner": "abc"}},
			{"negative id", Attributes{"parent_id": "-1"}},
			{"bad amount", Attributes{"amount": "12,5"}},
			{"bad date", Attributes{"due": "not a date"}},
			{"bad count", Attributes{"count": []int{1}}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var f fillTarget
				err := Assign(tt.attrs, targetFillable, f.fields())
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
			})
		}
	})

	t.Run("empty whitelist assigns nothing", func(t *testing.T) {
		var f fillTarget
		err := Assign(Attributes{"name": "x"}, Fillable{}, f.fields())

		require.NoError(t, err)
		assert.Empty(t, f.Name)
	})
}
