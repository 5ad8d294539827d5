package codec

import "sync"

// resetRegistration clears the once-per-process registration guard so tests
// can exercise Ready repeatedly. Test builds only.
func resetRegistration() {
	registerOnce = sync.Once{}
}
