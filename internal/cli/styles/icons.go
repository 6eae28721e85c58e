package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" // browser/web
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconCheck  = "\uf00c"
	IconX      = "\uf00d"
	IconInfo   = "\uf05a"
	IconConfig = "\ue615"
	IconFile   = "\uf15b"
	IconCursor = "\uf054" // chevron-right
)
