//go:build !unix && !windows

package platform

func startDetached(string) error {
	return errUnsupported
}
