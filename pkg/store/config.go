package store

// Config locates the data directory of a Store.
type Config interface {
	BasePath() string
}

// Dir is a Config naming the data directory directly.
type Dir string

// BasePath implements Config.
func (d Dir) BasePath() string {
	return string(d)
}
