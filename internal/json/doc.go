// Package json encodes command output. It uses sonic on the platforms sonic
// supports and encoding/json everywhere else; both sort map keys and escape
// HTML the same way, so output does not depend on the platform.
package json
