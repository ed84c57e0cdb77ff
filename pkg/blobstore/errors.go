package blobstore

// BlobNotFoundError is returned when the requested blob does not exist.
type BlobNotFoundError struct {
	Key string
}

func (e BlobNotFoundError) Error() string {
	return "blob not found"
}

// InvalidKeyError is returned when a storage key is malformed or would
// escape the storage directory.
type InvalidKeyError struct {
	Key string
}

func (e InvalidKeyError) Error() string {
	return "invalid storage key"
}
