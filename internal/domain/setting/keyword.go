// Package setting holds school-wide presentation settings: search
// keywords and the background images used on printed documents.
package setting

import (
	"strings"

	"github.com/schoolms/backend/internal/domain/shared"
	"golang.org/x/text/unicode/norm"
)

// Keyword is a free-text term attached to the public site
type Keyword struct {
	shared.BaseEntity
	Name string
}

// KeywordFillable lists the mass-assignable keyword attributes
var KeywordFillable = shared.Fillable{"name"}

// NewKeyword builds a keyword from an attribute bag
func NewKeyword(attrs shared.Attributes) (*Keyword, error) {
	k := &Keyword{BaseEntity: shared.NewBaseEntity()}
	if err := k.Fill(attrs); err != nil {
		return nil, err
	}
	return k, nil
}

// Fill bulk-assigns whitelisted attributes
func (k *Keyword) Fill(attrs shared.Attributes) error {
	next := *k
	if err := shared.Assign(attrs, KeywordFillable, shared.Fields{
		"name": shared.StringField(&next.Name),
	}); err != nil {
		return err
	}
	next.Name = NormalizeKeyword(next.Name)
	*k = next
	return nil
}

// NormalizeKeyword trims surrounding space and folds the name to NFC so
// visually identical keywords compare equal.
func NormalizeKeyword(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
