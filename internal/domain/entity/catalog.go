package entity

// SearchEngine describes a selectable web search provider.
type SearchEngine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"` // query is appended
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Shortcut string `json:"shortcut"` // bang key, e.g. "g" for "!g query"
}

// SearchEngines returns the supported engines; the first one is the fallback.
func SearchEngines() []SearchEngine {
	return []SearchEngine{
		{ID: "google", Name: "Google", URL: "https://www.google.com/search?q=", Icon: "G", Color: "#4285F4", Shortcut: "g"},
		{ID: "bing", Name: "Bing", URL: "https://www.bing.com/search?q=", Icon: "B", Color: "#008373", Shortcut: "b"},
		{ID: "baidu", Name: "Baidu", URL: "https://www.baidu.com/s?wd=", Icon: "B", Color: "#2932E1", Shortcut: "bd"},
		{ID: "duckduckgo", Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q=", Icon: "D", Color: "#DE5833", Shortcut: "ddg"},
	}
}

// FindSearchEngine looks up an engine by id.
func FindSearchEngine(id string) (SearchEngine, bool) {
	for _, e := range SearchEngines() {
		if e.ID == id {
			return e, true
		}
	}
	return SearchEngine{}, false
}

// AvailableIcons lists the Lucide icon names offered for groups.
func AvailableIcons() []string {
	return []string{
		"Star", "Heart", "Bookmark", "Folder", "Home",
		"Code", "Terminal", "Database", "Globe", "Briefcase",
		"Film", "Music", "Image", "Camera", "Gamepad2",
		"MessageCircle", "Users", "Mail", "Phone", "Video",
		"ShoppingBag", "CreditCard", "Wallet", "Gift", "Tag",
		"Book", "GraduationCap", "Lightbulb", "PenTool", "Palette",
		"Plane", "Car", "Coffee", "Utensils", "Dumbbell",
	}
}

// HitokotoType is a quote feed category.
type HitokotoType struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"` // selected by default
}

// HitokotoTypes returns every quote category.
func HitokotoTypes() []HitokotoType {
	return []HitokotoType{
		{ID: "a", Name: "Anime", Checked: true},
		{ID: "b", Name: "Comic", Checked: true},
		{ID: "c", Name: "Game", Checked: true},
		{ID: "d", Name: "Literature"},
		{ID: "e", Name: "Original"},
		{ID: "f", Name: "Internet"},
		{ID: "g", Name: "Other"},
		{ID: "h", Name: "Film"},
		{ID: "i", Name: "Poetry"},
		{ID: "j", Name: "NetEase Music"},
		{ID: "k", Name: "Philosophy"},
		{ID: "l", Name: "Wit"},
	}
}

// IsHitokotoType reports whether id is a known quote category.
func IsHitokotoType(id string) bool {
	for _, t := range HitokotoTypes() {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Wallpaper sources.
const (
	WallpaperSourceLocal    = "local"
	WallpaperSourceRandom   = "random"
	WallpaperSourceUnsplash = "unsplash"
	WallpaperSourcePicsum   = "picsum"
	WallpaperSourceBing     = "bing"
)

// WallpaperSource describes a background provider strategy.
type WallpaperSource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WallpaperSources returns the selectable background providers.
func WallpaperSources() []WallpaperSource {
	return []WallpaperSource{
		{ID: WallpaperSourceLocal, Name: "Curated", Description: "Hand-picked high quality wallpapers"},
		{ID: WallpaperSourceRandom, Name: "Random", Description: "Random HD wallpaper API"},
		{ID: WallpaperSourceUnsplash, Name: "Unsplash", Description: "Category seeded photos"},
		{ID: WallpaperSourcePicsum, Name: "Picsum", Description: "Random photos"},
		{ID: WallpaperSourceBing, Name: "Bing Daily", Description: "Bing daily images"},
	}
}

// IsWallpaperSource reports whether id is a known source.
func IsWallpaperSource(id string) bool {
	for _, s := range WallpaperSources() {
		if s.ID == id {
			return true
		}
	}
	return false
}

// WallpaperCategory is a wallpaper theme.
type WallpaperCategory struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Seeds []string `json:"seeds"` // keywords for seeded sources
}

// CategoryAll selects the whole catalog.
const CategoryAll = "all"

// WallpaperCategories returns the wallpaper themes in display order.
func WallpaperCategories() []WallpaperCategory {
	return []WallpaperCategory{
		{ID: "nature", Name: "Nature", Seeds: []string{"nature", "landscape", "green"}},
		{ID: "mountain", Name: "Mountain", Seeds: []string{"mountain", "peak", "alpine"}},
		{ID: "ocean", Name: "Ocean", Seeds: []string{"ocean", "sea", "beach", "water"}},
		{ID: "forest", Name: "Forest", Seeds: []string{"forest", "trees", "woods"}},
		{ID: "city", Name: "City", Seeds: []string{"city", "urban", "building"}},
		{ID: "space", Name: "Space", Seeds: []string{"night", "stars", "dark"}},
		{ID: "abstract", Name: "Abstract", Seeds: []string{"abstract", "pattern", "texture"}},
		{ID: "minimal", Name: "Minimal", Seeds: []string{"minimal", "simple", "clean"}},
		{ID: "dark", Name: "Dark", Seeds: []string{"dark", "moody", "shadow"}},
	}
}

// CategorySeeds returns the seed keywords for a category, falling back to nature.
func CategorySeeds(category string) []string {
	cats := WallpaperCategories()
	for _, c := range cats {
		if c.ID == category {
			return c.Seeds
		}
	}
	return cats[0].Seeds
}

// Wallpaper is a curated background image.
type Wallpaper struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// LocalWallpapers returns the curated catalog.
func LocalWallpapers() []Wallpaper {
	return []Wallpaper{
		{ID: "n1", URL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1920&q=80", Category: "nature"},
		{ID: "n2", URL: "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?w=1920&q=80", Category: "nature"},
		{ID: "n3", URL: "https://images.unsplash.com/photo-1433086966358-54859d0ed716?w=1920&q=80", Category: "nature"},
		{ID: "n4", URL: "https://images.unsplash.com/photo-1501854140801-50d01698950b?w=1920&q=80", Category: "nature"},
		{ID: "n5", URL: "https://images.unsplash.com/photo-1426604966848-d7adac402bff?w=1920&q=80", Category: "nature"},
		{ID: "n6", URL: "https://images.unsplash.com/photo-1472214103451-9374bd1c798e?w=1920&q=80", Category: "nature"},
		{ID: "m1", URL: "https://images.unsplash.com/photo-1519681393784-d120267933ba?w=1920&q=80", Category: "mountain"},
		{ID: "m2", URL: "https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?w=1920&q=80", Category: "mountain"},
		{ID: "m3", URL: "https://images.unsplash.com/photo-1454496522488-7a8e488e8606?w=1920&q=80", Category: "mountain"},
		{ID: "m4", URL: "https://images.unsplash.com/photo-1486870591958-9b9d0d1dda99?w=1920&q=80", Category: "mountain"},
		{ID: "m5", URL: "https://images.unsplash.com/photo-1483728642387-6c3bdd6c93e5?w=1920&q=80", Category: "mountain"},
		{ID: "m6", URL: "https://images.unsplash.com/photo-1445363692815-ebcd599f7621?w=1920&q=80", Category: "mountain"},
		{ID: "o1", URL: "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=1920&q=80", Category: "ocean"},
		{ID: "o2", URL: "https://images.unsplash.com/photo-1505118380757-91f5f5632de0?w=1920&q=80", Category: "ocean"},
		{ID: "o3", URL: "https://images.unsplash.com/photo-1439066615861-d1af74d74000?w=1920&q=80", Category: "ocean"},
		{ID: "o4", URL: "https://images.unsplash.com/photo-1518837695005-2083093ee35b?w=1920&q=80", Category: "ocean"},
		{ID: "o5", URL: "https://images.unsplash.com/photo-1484291470158-b8f8d608850d?w=1920&q=80", Category: "ocean"},
		{ID: "o6", URL: "https://images.unsplash.com/photo-1468413253725-0d5181091126?w=1920&q=80", Category: "ocean"},
		{ID: "f1", URL: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=1920&q=80", Category: "forest"},
		{ID: "f2", URL: "https://images.unsplash.com/photo-1448375240586-882707db888b?w=1920&q=80", Category: "forest"},
		{ID: "f3", URL: "https://images.unsplash.com/photo-1476231682828-37e571bc172f?w=1920&q=80", Category: "forest"},
		{ID: "f4", URL: "https://images.unsplash.com/photo-1473448912268-2022ce9509d8?w=1920&q=80", Category: "forest"},
		{ID: "f5", URL: "https://images.unsplash.com/photo-1502082553048-f009c37129b9?w=1920&q=80", Category: "forest"},
		{ID: "f6", URL: "https://images.unsplash.com/photo-1542273917363-3b1817f69a2d?w=1920&q=80", Category: "forest"},
		{ID: "c1", URL: "https://images.unsplash.com/photo-1480714378408-67cf0d13bc1b?w=1920&q=80", Category: "city"},
		{ID: "c2", URL: "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?w=1920&q=80", Category: "city"},
		{ID: "c3", URL: "https://images.unsplash.com/photo-1514565131-fce0801e5785?w=1920&q=80", Category: "city"},
		{ID: "c4", URL: "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=1920&q=80", Category: "city"},
		{ID: "c5", URL: "https://images.unsplash.com/photo-1444723121867-7a241cacace9?w=1920&q=80", Category: "city"},
		{ID: "c6", URL: "https://images.unsplash.com/photo-1519501025264-65ba15a82390?w=1920&q=80", Category: "city"},
		{ID: "s1", URL: "https://images.unsplash.com/photo-1446776811953-b23d57bd21aa?w=1920&q=80", Category: "space"},
		{ID: "s2", URL: "https://images.unsplash.com/photo-1462331940025-496dfbfc7564?w=1920&q=80", Category: "space"},
		{ID: "s3", URL: "https://images.unsplash.com/photo-1419242902214-272b3f66ee7a?w=1920&q=80", Category: "space"},
		{ID: "s4", URL: "https://images.unsplash.com/photo-1507400492013-162706c8c05e?w=1920&q=80", Category: "space"},
		{ID: "s5", URL: "https://images.unsplash.com/photo-1534796636912-3b95b3ab5986?w=1920&q=80", Category: "space"},
		{ID: "s6", URL: "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=1920&q=80", Category: "space"},
		{ID: "a1", URL: "https://images.unsplash.com/photo-1557683316-973673baf926?w=1920&q=80", Category: "abstract"},
		{ID: "a2", URL: "https://images.unsplash.com/photo-1579546929518-9e396f3cc809?w=1920&q=80", Category: "abstract"},
		{ID: "a3", URL: "https://images.unsplash.com/photo-1558591710-4b4a1ae0f04d?w=1920&q=80", Category: "abstract"},
		{ID: "a4", URL: "https://images.unsplash.com/photo-1557682250-33bd709cbe85?w=1920&q=80", Category: "abstract"},
		{ID: "a5", URL: "https://images.unsplash.com/photo-1557682224-5b8590cd9ec5?w=1920&q=80", Category: "abstract"},
		{ID: "a6", URL: "https://images.unsplash.com/photo-1557682260-96773eb01377?w=1920&q=80", Category: "abstract"},
		{ID: "mi1", URL: "https://images.unsplash.com/photo-1494500764479-0c8f2919a3d8?w=1920&q=80", Category: "minimal"},
		{ID: "mi2", URL: "https://images.unsplash.com/photo-1493246507139-91e8fad9978e?w=1920&q=80", Category: "minimal"},
		{ID: "mi3", URL: "https://images.unsplash.com/photo-1508739773434-c26b3d09e071?w=1920&q=80", Category: "minimal"},
		{ID: "mi4", URL: "https://images.unsplash.com/photo-1509114397022-ed747cca3f65?w=1920&q=80", Category: "minimal"},
		{ID: "mi5", URL: "https://images.unsplash.com/photo-1488866022504-f2584929ca5f?w=1920&q=80", Category: "minimal"},
		{ID: "mi6", URL: "https://images.unsplash.com/photo-1495616811223-4d98c6e9c869?w=1920&q=80", Category: "minimal"},
		{ID: "d1", URL: "https://images.unsplash.com/photo-1536859355448-76f92ebdc33d?w=1920&q=80", Category: "dark"},
		{ID: "d2", URL: "https://images.unsplash.com/photo-1531306728370-e2ebd9d7bb99?w=1920&q=80", Category: "dark"},
		{ID: "d3", URL: "https://images.unsplash.com/photo-1478760329108-5c3ed9d495a0?w=1920&q=80", Category: "dark"},
		{ID: "d4", URL: "https://images.unsplash.com/photo-1532003885409-ed84d334f6cc?w=1920&q=80", Category: "dark"},
		{ID: "d5", URL: "https://images.unsplash.com/photo-1505533321630-975218a5f66f?w=1920&q=80", Category: "dark"},
		{ID: "d6", URL: "https://images.unsplash.com/photo-1464802686167-b939a6910659?w=1920&q=80", Category: "dark"},
	}
}

// WallpapersByCategory filters the curated catalog. An empty category or
// CategoryAll returns the whole catalog.
func WallpapersByCategory(category string) []Wallpaper {
	all := LocalWallpapers()
	if category == "" || category == CategoryAll {
		return all
	}
	out := make([]Wallpaper, 0)
	for _, w := range all {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}

// BingImage is one entry of the Bing daily image archive.
type BingImage struct {
	URL       string `json:"url"` // relative to the Bing host
	Title     string `json:"title"`
	Copyright string `json:"copyright"`
}
