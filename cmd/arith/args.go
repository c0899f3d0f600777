package main

import "strings"

// valueflags are the flags whose value may be given as the next argument.
var valueflags = map[string]bool{
	"--in":        true,
	"--max-depth": true,
	"--log-level": true,
}

// exprargs protects arguments that are negative expressions, like "-5+2" or
// "-(1)", from flag parsing. Such an argument gets a leading space, which
// pflag does not read as a flag and Evaluate ignores. Flag values and
// everything after "--" are left alone.
func exprargs(args []string) []string {
	r := make([]string, len(args))
	copy(r, args)
	for i := 0; i < len(r); i++ {
		a := r[i]
		switch {
		case a == "--":
			return r
		case valueflags[a]:
			i++
		case isnegexpr(a):
			r[i] = " " + a
		}
	}
	return r
}

// isnegexpr reports whether a looks like an expression starting with a minus
// sign rather than a flag.
func isnegexpr(a string) bool {
	if !strings.HasPrefix(a, "-") {
		return false
	}
	rest := strings.TrimLeft(a, "-")
	return rest != "" && strings.ContainsRune("0123456789.(", rune(rest[0]))
}
