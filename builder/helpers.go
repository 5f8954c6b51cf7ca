// SPDX-License-Identifier: MIT

// Package builder provides internal helpers used by Constructor
// implementations.
package builder

import "fmt"

// builderErrorf wraps err with the given method context and a formatted
// detail: "<Method>: <detail>: <err>". The sentinel survives via %w.
func builderErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
