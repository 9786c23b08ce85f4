package entry

// Entry is a single record for a key. A tombstone shadows any value recorded
// for the same key in an outer layer.
type Entry struct {
	Key     string
	Value   string
	Deleted bool
}

func New(key string, value string) Entry {
	return Entry{
		Key:   key,
		Value: value,
	}
}

func Tombstone(key string) Entry {
	return Entry{
		Key:     key,
		Deleted: true,
	}
}
