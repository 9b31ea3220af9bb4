package models

// Content is the uniform view of a post or comment used by the
// authorization guard and the vote ledger, so ownership and voting rules are
// written once instead of per entity type.
type Content interface {
	ContentID() uint
	ContentAuthor() string
}

// ContentID implements Content.
func (p *Post) ContentID() uint { return p.ID }

// ContentAuthor implements Content.
func (p *Post) ContentAuthor() string { return p.Author }

// ContentID implements Content.
func (c *Comment) ContentID() uint { return c.ID }

// ContentAuthor implements Content.
func (c *Comment) ContentAuthor() string { return c.Author }
