package diskrelay

import "fmt"

// Set at build time with -ldflags "-X diskrelay.major=...".
var (
	major = "0"
	minor = "1"
	patch = "0"
	meta  = "dev"
)

func StringVersion() string {
	v := fmt.Sprintf("%s.%s.%s", major, minor, patch)
	if meta != "" {
		v += "-" + meta
	}

	return v
}
