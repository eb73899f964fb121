package config

// Reset drops every cached configuration so tests can reload from a fresh environment.
func Reset() {
	loaded.Range(func(key, _ any) bool {
		loaded.Delete(key)
		return true
	})
}
