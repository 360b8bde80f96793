package orchestrator

func NewKeyedLock() *KeyedLock {
	return &KeyedLock{
		locks: make(map[string]*keyedEntry),
	}
}

// Lock blocks until key is free and returns the matching unlock function.
func (kl *KeyedLock) Lock(key string) func() {
	kl.mu.Lock()
	entry, ok := kl.locks[key]

	if !ok {
		entry = &keyedEntry{}
		kl.locks[key] = entry
	}

	entry.refs++
	kl.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		kl.mu.Lock()
		entry.refs--

		if entry.refs == 0 {
			delete(kl.locks, key)
		}

		kl.mu.Unlock()
	}
}
