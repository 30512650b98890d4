// Package strength estimates how long a brute-force attacker needs to
// exhaust a password's search space and maps the estimate to a security
// tier with ordered improvement suggestions.
package strength
