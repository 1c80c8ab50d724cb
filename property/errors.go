package property

import (
	"errors"
	"fmt"
)

// These are programming errors. The engine panics with them (possibly wrapped
// with the property name) instead of returning them.
var (
	ErrRecursion       = errors.New("Recursion detected")
	ErrConstantChanged = errors.New("Constant property being changed")
	ErrDropped         = errors.New("property used after Drop")
)

func fail(err error, name string) {
	if name == "" {
		panic(err)
	}
	panic(fmt.Errorf("%w: %s", err, name))
}
