package models

// Superblock is a top-level certification track, e.g. "responsive-web-design".
type Superblock struct {
	Slug   string  `json:"slug" db:"slug"`
	Title  string  `json:"title" db:"title"`
	Order  int     `json:"order" db:"position"`
	Blocks []Block `json:"blocks,omitempty"`
}

// Block groups challenges inside a superblock.
type Block struct {
	Slug           string   `json:"slug" db:"slug"`
	SuperblockSlug string   `json:"superblock" db:"superblock_slug"`
	Title          string   `json:"title" db:"title"`
	Order          int      `json:"order" db:"position"`
	ChallengeIDs   []string `json:"challenges,omitempty"`
}

// Challenge is one exercise. Instructions are stored as markdown and
// rendered to HTML on the way out.
type Challenge struct {
	ID           string `json:"id" db:"id"`
	BlockSlug    string `json:"block" db:"block_slug"`
	Title        string `json:"title" db:"title"`
	Order        int    `json:"order" db:"position"`
	Instructions string `json:"instructions" db:"instructions"`
	// InstructionsHTML is filled by the service, never persisted.
	InstructionsHTML string `json:"instructionsHtml,omitempty" db:"-"`
}
