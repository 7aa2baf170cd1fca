package ui

import "fyne.io/fyne/v2"

// recentMenuItems builds the recent-files entries: paths most recent first,
// a disabled placeholder when there are none, then a clear action.
func recentMenuItems(paths []string, open func(string), clear func()) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(paths)+3)
	if len(paths) == 0 {
		empty := fyne.NewMenuItem(RecentEmptyLabel, nil)
		empty.Disabled = true
		items = append(items, empty)
	}
	for _, p := range paths {
		items = append(items, fyne.NewMenuItem(p, func() { open(p) }))
	}
	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(RecentClearLabel, clear),
	)
	return items
}
