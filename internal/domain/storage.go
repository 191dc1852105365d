package domain

import (
	"context"
	"mime/multipart"
)

// CollectionStore persists named collections as ordered sequences of
// records. A collection that has never been written loads as an empty
// sequence. Save replaces the whole collection; callers read-modify-write
// the full sequence.
//
// The store provides no isolation between concurrent read-modify-write
// sequences. Repositories built on it serialize their own access in-process;
// concurrent writers in separate processes are last-write-wins.
type CollectionStore interface {
	// Load decodes the named collection into dest, which must be a pointer
	// to a slice. Decoding failures surface as ErrCorrupt, I/O failures as
	// ErrStorage.
	Load(ctx context.Context, collection string, dest any) error
	// Save replaces the named collection with records (a slice value).
	Save(ctx context.Context, collection string, records any) error
}

// IDGenerator produces unique, time-ordered string identifiers. Values are
// opaque to callers and safe to embed in URLs.
type IDGenerator interface {
	Next() string
}

// UploadStore persists uploaded files and hands back stored asset names.
// Stored names are what record fields like Event.Image and Booth.Photos
// carry; the caller writes them onto the record before saving it.
type UploadStore interface {
	// Attach stores a single file and returns its stored name.
	Attach(file *multipart.FileHeader) (string, error)
	// AttachUpTo stores at most max files in receipt order, silently
	// dropping the rest, and returns the stored names. The returned slice
	// is empty, never nil, when no files were given.
	AttachUpTo(files []*multipart.FileHeader, max int) ([]string, error)
}
