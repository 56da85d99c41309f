package theme

import "github.com/charmbracelet/lipgloss"

var (
	BaseBg       = lipgloss.Color("#11111b")
	Accent       = lipgloss.Color("#cba6f7")
	Teal         = lipgloss.Color("#94e2d5")
	Peach        = lipgloss.Color("#fab387")
	SuccessColor = lipgloss.Color("#a6e3a1")
	WarnColor    = lipgloss.Color("#f9e2af")
	ErrorColor   = lipgloss.Color("#f38ba8")
	TextColor    = lipgloss.Color("#cdd6f4")
	SubTextColor = lipgloss.Color("#a6adc8")
	DimColor     = lipgloss.Color("#6c7086")
	Flamingo     = lipgloss.Color("#f5c2e7")
)

var (
	HeadStyle = lipgloss.NewStyle().
			Foreground(Peach).
			Bold(true)
	InputStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Underline(true)
	CaretStyle = lipgloss.NewStyle().
			Background(SubTextColor)
	DimStyle = lipgloss.NewStyle().
			Foreground(DimColor)
	NameStyle = lipgloss.NewStyle().
			Foreground(TextColor)
	MatchStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)
	FocusStyle = lipgloss.NewStyle().
			Foreground(BaseBg).
			Background(Accent)
	FocusMatchStyle = lipgloss.NewStyle().
			Foreground(BaseBg).
			Background(Flamingo).
			Bold(true)
	GroupStyle = lipgloss.NewStyle().
			Foreground(WarnColor).
			Bold(true)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)
	KeyStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)
)
