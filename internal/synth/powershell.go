package synth

import "strings"

// escapePowerShell makes s safe inside a PowerShell single-quoted
// string literal, where a doubled quote is the only escape.
func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
