package app

// Storage is a string key-value store with the semantics of browser local
// storage. GetItem reports ok=false when the key has never been set.
type Storage interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// Notifier receives user-facing feedback events from the store.
type Notifier interface {
	ItemAdded(name string)
}

type NotifierFunc func(name string)

func (f NotifierFunc) ItemAdded(name string) { f(name) }
