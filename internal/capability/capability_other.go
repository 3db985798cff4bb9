//go:build !amd64 && !arm64

package capability

func init() {
	initCapabilities()
}
