package entity

// BookmarkNode is one node of a browser bookmark tree: either a
// *BookmarkLink or a *BookmarkFolder.
type BookmarkNode interface {
	NodeTitle() string
	bookmarkNode()
}

// BookmarkLink is a leaf carrying a URL.
type BookmarkLink struct {
	ID    string
	Title string
	URL   string
}

// BookmarkFolder groups child nodes.
type BookmarkFolder struct {
	ID       string
	Title    string
	Children []BookmarkNode
}

// NodeTitle returns the link title.
func (l *BookmarkLink) NodeTitle() string { return l.Title }

// NodeTitle returns the folder title.
func (f *BookmarkFolder) NodeTitle() string { return f.Title }

func (*BookmarkLink) bookmarkNode()   {}
func (*BookmarkFolder) bookmarkNode() {}

// BrowserBookmark is a flattened browser bookmark ready for selection.
type BrowserBookmark struct {
	ExternalID string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	FolderPath string `json:"folder"`
}
