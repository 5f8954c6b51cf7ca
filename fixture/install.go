// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"os"

	"github.com/plus3it/gorecurcopy"
)

// Install verifies the fixtures in src against p and, only if every set
// passes, copies the whole directory tree of src into dst (created when
// missing). Existing files in dst with the same names are overwritten.
func Install(src, dst string, p Plan) error {
	if _, err := VerifyPlan(src, p); err != nil {
		return fmt.Errorf("Install: %w", err)
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("Install: %w", err)
	}
	if err := gorecurcopy.CopyDirectory(src, dst); err != nil {
		return fmt.Errorf("Install: copy %s -> %s: %w", src, dst, err)
	}

	return nil
}
