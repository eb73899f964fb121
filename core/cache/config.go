package cache

// Config holds cache settings loadable from the environment.
type Config struct {
	Capacity int `env:"CACHE_CAPACITY" envDefault:"128"`
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Capacity: 128,
	}
}
