package storage

import "io"

// BlobStore serves the static story media: cover art, coloring pages.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
}
