package reader

import (
	"fmt"

	"github.com/pkg/errors"
)

type kind int

const (
	all kind = iota
	byName
	byIndex
)

// Selector identifies the worksheets to read: all of them, one by name or one by zero-based
// position. The zero value selects all sheets.
type Selector struct {
	kind  kind
	name  string
	index int
}

func All() Selector {
	return Selector{kind: all}
}

func ByName(name string) Selector {
	return Selector{kind: byName, name: name}
}

func ByIndex(index int) Selector {
	return Selector{kind: byIndex, index: index}
}

// SelectorOf converts a dynamically typed sheet identifier to a Selector: nil selects all
// sheets, a string selects by name and an integer selects by position. Any other type is
// an ErrInvalidArgumentType error.
func SelectorOf(v any) (Selector, error) {
	switch s := v.(type) {
	case nil:
		return All(), nil
	case Selector:
		return s, nil
	case string:
		return ByName(s), nil
	case int:
		return ByIndex(s), nil
	case int8:
		return ByIndex(int(s)), nil
	case int16:
		return ByIndex(int(s)), nil
	case int32:
		return ByIndex(int(s)), nil
	case int64:
		return ByIndex(int(s)), nil
	case uint:
		return ByIndex(int(s)), nil
	case uint8:
		return ByIndex(int(s)), nil
	case uint16:
		return ByIndex(int(s)), nil
	case uint32:
		return ByIndex(int(s)), nil
	case uint64:
		return ByIndex(int(s)), nil
	default:
		return Selector{}, errors.Wrapf(ErrInvalidArgumentType, "expected nil, string or integer, got %T", v)
	}
}

// Explicit is true for a selector that names exactly one sheet.
func (s Selector) Explicit() bool {
	return s.kind != all
}

func (s Selector) String() string {
	switch s.kind {
	case byName:
		return fmt.Sprintf("'%s'", s.name)
	case byIndex:
		return fmt.Sprintf("#%d", s.index)
	default:
		return "*"
	}
}

// Resolve matches a selector against the ordered sheet names of a spreadsheet and returns
// the selected names.
func Resolve(names []string, s Selector) ([]string, error) {
	switch s.kind {
	case all:
		return append([]string{}, names...), nil

	case byName:
		for _, name := range names {
			if name == s.name {
				return []string{name}, nil
			}
		}

		return nil, &NotFoundError{Sheet: s.name, Available: append([]string{}, names...)}

	case byIndex:
		if s.index < 0 || s.index >= len(names) {
			return nil, &IndexOutOfRangeError{Index: s.index, Count: len(names)}
		}

		return []string{names[s.index]}, nil

	default:
		return nil, errors.Wrapf(ErrInvalidArgumentType, "unknown selector %v", s)
	}
}
