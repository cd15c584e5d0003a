package conversation

import "github.com/ezhil-ai/ezhil/internal/storage"

// Load reads a persisted conversation. A missing file is an empty
// conversation, not an error.
func Load(path string) ([]Entry, error) {
	var entries []Entry
	if err := storage.Load(path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Save persists the full conversation, replacing any previous transcript.
func Save(path string, entries []Entry) error {
	return storage.Save(path, entries)
}
