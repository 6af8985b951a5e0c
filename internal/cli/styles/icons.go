package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning

	IconConfig   = "" // config
	IconBookmark = "" // bookmark
	IconFolder   = "" // folder
	IconImage    = "" // image file
	IconStar     = "" // active group

	IconCheckboxEmpty   = "" // unchecked
	IconCheckboxChecked = "" // checked

	cursorEmpty    = "  "
	cursorSelected = "▸ " // ▸
)
