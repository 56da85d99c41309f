package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/nicobailon/qr/internal/entries"
	"github.com/nicobailon/qr/internal/termcheck"
	"github.com/nicobailon/qr/internal/tui/theme"
	"github.com/nicobailon/qr/internal/tui/views"
	"github.com/spf13/cobra"
)

var gridFlag bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the entries without opening the picker",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		list, err := loadEntries(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if gridFlag {
			fill, err := views.ParseFillOrder(strings.ToLower(cfg.FillOrder))
			if err != nil {
				return err
			}
			w, _ := termcheck.Size(os.Stdout)
			listGrid(out, list, w, views.LayoutOptions{Fill: fill, Padding: cfg.ColumnPadding})
			return nil
		}
		listAction(out, list)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&gridFlag, "grid", false, "Lay names out the way the picker does")
}

// listAction prints entries grouped under their group headers.
func listAction(out io.Writer, list *entries.List) {
	if list.Empty() {
		fmt.Fprintln(out, "No entries.")
		return
	}
	nameWidth := 0
	for i := 0; i < list.Len(); i++ {
		if w := lipgloss.Width(list.At(i).Name); w > nameWidth {
			nameWidth = w
		}
	}
	for gi, group := range list.Groups() {
		if gi > 0 {
			fmt.Fprintln(out)
		}
		if group != "" {
			fmt.Fprintln(out, theme.GroupStyle.Render(group))
		}
		for i := 0; i < list.Len(); i++ {
			e := list.At(i)
			if e.Group != group {
				continue
			}
			pad := strings.Repeat(" ", nameWidth-lipgloss.Width(e.Name))
			fmt.Fprintf(out, "  %s%s  %s\n", theme.NameStyle.Render(e.Name), pad, theme.DimStyle.Render(e.Command))
		}
	}
}

// listGrid prints every name in the picker's grid arrangement for a
// terminal of the given width. Rows are not limited by height.
func listGrid(out io.Writer, list *entries.List, width int, opts views.LayoutOptions) {
	all := make([]int, list.Len())
	for i := range all {
		all[i] = i
	}
	g := views.Layout(list, all, views.Viewport{Width: width, Height: list.Len()}, opts)
	for r := 0; r < g.Rows; r++ {
		var b strings.Builder
		for c := 0; c < g.Cols; c++ {
			pos, ok := g.At(r, c)
			if !ok {
				continue
			}
			name := ansi.Truncate(list.At(all[pos]).Name, g.CellWidth, "…")
			b.WriteString(name)
			b.WriteString(strings.Repeat(" ", g.CellWidth-lipgloss.Width(name)))
		}
		fmt.Fprintln(out, strings.TrimRight(b.String(), " "))
	}
}
