//go:build !(freebsd || linux || netbsd || openbsd || solaris || dragonfly)

package selection

func usePrimary(bool) func() {
	return func() {}
}

func readWaylandPrimary() (string, bool, error) {
	return "", false, nil
}
