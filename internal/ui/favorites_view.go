package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/college-schedule/internal/model"
	"github.com/ytget/college-schedule/internal/present"
)

// FavoritesView lists favorite groups; tapping one opens its schedule
type FavoritesView struct {
	localization *present.Localization
	onOpen       func(model.GroupID)
	onRemove     func(model.GroupID)

	groups []model.GroupID

	title     *widget.Label
	list      *widget.List
	emptyText *widget.Label
	emptyHint *widget.Label
	empty     *fyne.Container
	content   fyne.CanvasObject
}

// NewFavoritesView creates the favorites tab
func NewFavoritesView(l *present.Localization, onOpen, onRemove func(model.GroupID)) *FavoritesView {
	fv := &FavoritesView{localization: l, onOpen: onOpen, onRemove: onRemove}

	fv.title = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	fv.list = widget.NewList(
		func() int {
			return len(fv.groups)
		},
		fv.createItem,
		fv.updateItem,
	)

	fv.emptyText = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	fv.emptyHint = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	fv.emptyHint.Wrapping = fyne.TextWrapWord
	fv.empty = container.NewVBox(layout.NewSpacer(), fv.emptyText, fv.emptyHint, layout.NewSpacer())

	fv.content = container.NewBorder(fv.title, nil, nil, nil, container.NewStack(fv.list, fv.empty))
	fv.RefreshTexts()
	fv.SetFavorites(nil)
	return fv
}

// Content returns the root canvas object of the tab
func (fv *FavoritesView) Content() fyne.CanvasObject {
	return fv.content
}

// SetFavorites replaces the listed groups
func (fv *FavoritesView) SetFavorites(groups []model.GroupID) {
	fv.groups = groups
	if len(groups) == 0 {
		fv.list.Hide()
		fv.empty.Show()
	} else {
		fv.empty.Hide()
		fv.list.Show()
	}
	fv.list.Refresh()
}

// Groups returns the listed groups
func (fv *FavoritesView) Groups() []model.GroupID {
	return fv.groups
}

// RefreshTexts re-applies localized strings
func (fv *FavoritesView) RefreshTexts() {
	fv.title.SetText(fv.localization.GetText(present.KeyFavoriteGroups))
	fv.emptyText.SetText(fv.localization.GetText(present.KeyNoFavorites))
	fv.emptyHint.SetText(fv.localization.GetText(present.KeyNoFavoritesHint))
}

func (fv *FavoritesView) createItem() fyne.CanvasObject {
	open := widget.NewButton("", nil)
	open.Alignment = widget.ButtonAlignLeading
	open.Importance = widget.LowImportance
	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
	remove.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, nil, remove, open)
}

func (fv *FavoritesView) updateItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(fv.groups) {
		return
	}
	group := fv.groups[id]

	row := item.(*fyne.Container)
	var open, remove *widget.Button
	for _, obj := range row.Objects {
		btn, ok := obj.(*widget.Button)
		if !ok {
			continue
		}
		if btn.Icon != nil {
			remove = btn
		} else {
			open = btn
		}
	}
	if open == nil || remove == nil {
		return
	}

	open.SetText(IconFavoriteOn + " " + group.String())
	open.OnTapped = func() {
		if fv.onOpen != nil {
			fv.onOpen(group)
		}
	}
	remove.OnTapped = func() {
		if fv.onRemove != nil {
			fv.onRemove(group)
		}
	}
}
