package assets

// Loader reads asset bytes by filename.
// Implementations may load from the filesystem, an embed.FS, object storage, etc.
type Loader interface {
	// Load returns the raw bytes of the named asset.
	// Returns ErrAssetNotFound if the asset doesn't exist.
	// Returns ErrInvalidFilename if the name is not a bare filename.
	Load(filename string) ([]byte, error)
}
