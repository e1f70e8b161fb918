package backstage

// Config holds global configuration for the pool system
var Config config = config{defaultPoolCapacity: 100}

type config struct {
	defaultPoolCapacity int
}

// SetDefaultPoolCapacity configures the initial capacity of lazily created
// component pools.
func (c *config) SetDefaultPoolCapacity(n int) {
	if n > 0 {
		c.defaultPoolCapacity = n
	}
}
