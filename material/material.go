// Package material supplies the visual attributes consumed by the widget
// package: a color palette and per-widget-family lipgloss style records.
// Widgets treat these as opaque; swapping a Theme restyles the whole library.
package material

import "github.com/charmbracelet/lipgloss"

// Baseline material palette, true-color hex values.
const (
	ColorPrimary   lipgloss.Color = "#6200ee" // indigo/violet - primary surfaces
	ColorOnPrimary lipgloss.Color = "#ffffff"
	ColorSecondary lipgloss.Color = "#03dac6" // teal - accents, snackbar actions
	ColorSurface   lipgloss.Color = "#1e1e24"
	ColorOnSurface lipgloss.Color = "#e6e1e5"
	ColorOutline   lipgloss.Color = "#79747e"
	ColorMuted     lipgloss.Color = "#938f99"
	ColorScrim     lipgloss.Color = "#4a4458"
	ColorError     lipgloss.Color = "#cf6679"
)

// AppBarStyle styles the top navigation bar.
type AppBarStyle struct {
	Bar    lipgloss.Style // full-width bar background
	Title  lipgloss.Style
	Toggle lipgloss.Style // menu / overflow / search trigger buttons
	Height int
}

// ButtonStyle styles the button family.
type ButtonStyle struct {
	Contained lipgloss.Style
	Outlined  lipgloss.Style
	Text      lipgloss.Style
	Icon      lipgloss.Style // icon-only rendering
	Disabled  lipgloss.Style
}

// SelectStyle styles the select widget in its three renderings.
type SelectStyle struct {
	Tab        lipgloss.Style // inline tab row, unselected
	TabActive  lipgloss.Style
	Item       lipgloss.Style // vertical sheet list, unselected
	ItemActive lipgloss.Style
	ToggleOn   lipgloss.Style // single-choice toggle row
	ToggleOff  lipgloss.Style
}

// SnackbarStyle styles the transient message banner.
type SnackbarStyle struct {
	Box    lipgloss.Style
	Text   lipgloss.Style
	Action lipgloss.Style
	Width  int // maximum banner width in columns
}

// SheetStyle styles the docked side panels.
type SheetStyle struct {
	Panel lipgloss.Style
	Title lipgloss.Style
	Width int // docked panel width in columns
}

// DialogStyle styles the centered modal card.
type DialogStyle struct {
	Card  lipgloss.Style
	Title lipgloss.Style
}

// SearchStyle styles the search field in its two placements.
type SearchStyle struct {
	Inline  lipgloss.Style // in-bar text input (desktop)
	Overlay lipgloss.Style // full-width overlay variant
	Prompt  string
}

// TableStyle styles the sortable table widget.
type TableStyle struct {
	Border     lipgloss.Style
	Header     lipgloss.Style
	SortHeader lipgloss.Style // header cell of the active sort column
	Cell       lipgloss.Style
}

// ProgressStyle styles the indeterminate progress indicator.
type ProgressStyle struct {
	Spinner lipgloss.Style
	Label   lipgloss.Style
}

// Theme bundles the style records for every widget family.
type Theme struct {
	AppBar   AppBarStyle
	Button   ButtonStyle
	Select   SelectStyle
	Snackbar SnackbarStyle
	Sheet    SheetStyle
	Dialog   DialogStyle
	Search   SearchStyle
	Table    TableStyle
	Progress ProgressStyle
	Scrim    lipgloss.Style // applied to content behind a modal layer
}

// Default returns the baseline material theme.
func Default() Theme {
	return Theme{
		AppBar: AppBarStyle{
			Bar: lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(ColorOnPrimary).
				Padding(0, 1),
			Title: lipgloss.NewStyle().
				Bold(true).
				Background(ColorPrimary).
				Foreground(ColorOnPrimary),
			Toggle: lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(ColorOnPrimary).
				Padding(0, 1),
			Height: 1,
		},
		Button: ButtonStyle{
			Contained: lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(ColorOnPrimary).
				Padding(0, 2),
			Outlined: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorOutline).
				Foreground(ColorPrimary).
				Padding(0, 1),
			Text: lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Padding(0, 1),
			Icon: lipgloss.NewStyle().
				Foreground(ColorOnSurface).
				Padding(0, 1),
			Disabled: lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 2),
		},
		Select: SelectStyle{
			Tab: lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 2),
			TabActive: lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorOnPrimary).
				Background(ColorPrimary).
				Padding(0, 2),
			Item: lipgloss.NewStyle().
				Foreground(ColorOnSurface).
				Padding(0, 1),
			ItemActive: lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary).
				Padding(0, 1),
			ToggleOn: lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorOnPrimary).
				Background(ColorPrimary).
				Padding(0, 1),
			ToggleOff: lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1),
		},
		Snackbar: SnackbarStyle{
			Box: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorOutline).
				Background(ColorSurface).
				Padding(0, 1),
			Text: lipgloss.NewStyle().
				Foreground(ColorOnSurface),
			Action: lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary),
			Width: 40,
		},
		Sheet: SheetStyle{
			Panel: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorOutline).
				Background(ColorSurface).
				Padding(1, 2),
			Title: lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorOnSurface),
			Width: 28,
		},
		Dialog: DialogStyle{
			Card: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorOutline).
				Background(ColorSurface).
				Padding(1, 2),
			Title: lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorOnSurface),
		},
		Search: SearchStyle{
			Inline: lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(ColorOnPrimary).
				Padding(0, 1),
			Overlay: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorSecondary).
				Padding(0, 1),
			Prompt: "⌕ ",
		},
		Table: TableStyle{
			Border: lipgloss.NewStyle().
				Foreground(ColorOutline),
			Header: lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorOnSurface).
				Padding(0, 1),
			SortHeader: lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary).
				Padding(0, 1),
			Cell: lipgloss.NewStyle().
				Foreground(ColorOnSurface).
				Padding(0, 1),
		},
		Progress: ProgressStyle{
			Spinner: lipgloss.NewStyle().
				Foreground(ColorSecondary),
			Label: lipgloss.NewStyle().
				Foreground(ColorMuted),
		},
		Scrim: lipgloss.NewStyle().
			Foreground(ColorScrim),
	}
}
