package session

// Storage persists the token pair between runs. It is the terminal-client
// stand-in for browser-local storage: two string values that survive a
// restart and disappear only on explicit logout or session eviction.
type Storage interface {
	// Load reads the persisted values. A missing backing file is not an
	// error; it yields empty values.
	Load() (access, refresh string, err error)

	// Store writes both values in one operation, replacing whatever was
	// there. Called with empty strings to clear.
	Store(access, refresh string) error
}
