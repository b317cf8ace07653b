package storage

// Storage defines interface for any object storage
type Storage[K comparable, V any] interface {
	Set(key K, value V)
	Get(key K) (V, bool)
	Delete(key K) bool
	DeleteIf(fn func(key K, value V) bool) int
	GetAllValues() []V
	Count() int
}
