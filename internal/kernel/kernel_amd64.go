//go:build amd64

package kernel

import "golang.org/x/sys/cpu"

func init() {
	hasFMA = cpu.X86.HasFMA
	initKind()
}
