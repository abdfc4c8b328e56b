package colortable

import (
	"fmt"
	"strings"
)

func errUnknownTable(name string) error {
	return fmt.Errorf("colortable: unknown table %q (valid: %s)", name, strings.Join(names, ", "))
}
