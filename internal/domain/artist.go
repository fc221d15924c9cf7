package domain

// Artist is a directory entry. There is no moderation status: artist entries
// are public the moment they are created.
type Artist struct {
	Id        string
	CreatedAt int64 // unix milliseconds
	Name      string
	Bio       string
	Role      string
	Link      string
	Tags      string
	ImagePath string
}
