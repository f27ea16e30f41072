//go:build hashtrace_debug

package hashtrace

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
