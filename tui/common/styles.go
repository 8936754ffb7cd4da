package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1DA1F2")).
			Padding(1, 2, 0, 1)

	// UserBadgeStyle shows the logged-in user next to the title.
	UserBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")). // Dimmed grey
			Italic(true).
			MarginLeft(1)

	// AuthorStyle styles the tuit author handle.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ContentStyle styles tuit message text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// SelectedStyle highlights the currently selected group.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1DA1F2")).
			Padding(0, 1)

	// FavoriteBadgeStyle marks authors the user bookmarked.
	FavoriteBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EED49F")).
				MarginLeft(1)

	// ReplyIndentStyle indents replies under their parent.
	ReplyIndentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#444444")).
				PaddingLeft(2)

	// MetadataStyle styles like/reply counters.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// LikeActiveStyle styles the heart of a liked tuit.
	LikeActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// UnselectedStyle gives unselected groups a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// FocusedFieldStyle marks the active form field label.
	FocusedFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1DA1F2")).
				Bold(true)

	// BlurredFieldStyle marks inactive form field labels.
	BlurredFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D"))

	// NoticeStyle styles informational notices such as "no posts".
	NoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F")).
			Padding(0, 1)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)
