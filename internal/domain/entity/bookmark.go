package entity

// DefaultGroupID is the reserved group that always exists and absorbs
// bookmarks from deleted groups.
const DefaultGroupID = "default"

// Group is a named, iconized category that partitions bookmarks.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"` // Lucide icon name
}

// IsDefault returns true for the protected default group.
func (g Group) IsDefault() bool {
	return g.ID == DefaultGroupID
}

// Bookmark is a link shown on the new-tab grid.
type Bookmark struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Icon    string `json:"icon"` // URL or empty
	GroupID string `json:"groupId"`
}

// InGroup returns true if the bookmark belongs to the given group.
func (b Bookmark) InGroup(groupID string) bool {
	return b.GroupID == groupID
}

// FindGroup returns the index of the group with the given id, or -1.
func FindGroup(groups []Group, id string) int {
	for i := range groups {
		if groups[i].ID == id {
			return i
		}
	}
	return -1
}

// FindBookmark returns the index of the bookmark with the given id, or -1.
func FindBookmark(bookmarks []Bookmark, id string) int {
	for i := range bookmarks {
		if bookmarks[i].ID == id {
			return i
		}
	}
	return -1
}

// FilterByGroup returns the bookmarks belonging to groupID, preserving order.
func FilterByGroup(bookmarks []Bookmark, groupID string) []Bookmark {
	out := make([]Bookmark, 0)
	for _, b := range bookmarks {
		if b.InGroup(groupID) {
			out = append(out, b)
		}
	}
	return out
}

// DefaultGroups returns the built-in groups seeded on first run.
func DefaultGroups() []Group {
	return []Group{
		{ID: DefaultGroupID, Name: "Favorites", Icon: "Star"},
		{ID: "dev", Name: "Development", Icon: "Code"},
		{ID: "media", Name: "Media", Icon: "Film"},
		{ID: "social", Name: "Social", Icon: "MessageCircle"},
	}
}

// DefaultBookmarks returns the built-in bookmarks seeded on first run.
func DefaultBookmarks() []Bookmark {
	return []Bookmark{
		{ID: "1", Title: "GitHub", URL: "https://github.com", Icon: "https://github.githubassets.com/favicons/favicon.svg", GroupID: "dev"},
		{ID: "2", Title: "Google", URL: "https://google.com", Icon: "https://www.google.com/favicon.ico", GroupID: DefaultGroupID},
		{ID: "3", Title: "YouTube", URL: "https://youtube.com", Icon: "https://www.youtube.com/favicon.ico", GroupID: "media"},
		{ID: "4", Title: "Zhihu", URL: "https://zhihu.com", Icon: "https://static.zhihu.com/heifetz/favicon.ico", GroupID: "social"},
		{ID: "5", Title: "Bilibili", URL: "https://bilibili.com", Icon: "https://www.bilibili.com/favicon.ico", GroupID: "media"},
		{ID: "6", Title: "Juejin", URL: "https://juejin.cn", Icon: "https://lf3-cdn-tos.bytescm.com/obj/static/xitu_juejin_web/static/favicons/favicon-32x32.png", GroupID: "dev"},
		{ID: "7", Title: "Stack Overflow", URL: "https://stackoverflow.com", Icon: "https://cdn.sstatic.net/Sites/stackoverflow/Img/favicon.ico", GroupID: "dev"},
		{ID: "8", Title: "Twitter", URL: "https://twitter.com", Icon: "https://abs.twimg.com/favicons/twitter.ico", GroupID: "social"},
		{ID: "9", Title: "Baidu", URL: "https://baidu.com", Icon: "https://www.baidu.com/favicon.ico", GroupID: DefaultGroupID},
		{ID: "10", Title: "Netflix", URL: "https://netflix.com", Icon: "https://assets.nflxext.com/us/ffe/siteui/common/icons/nficon2016.ico", GroupID: "media"},
	}
}
