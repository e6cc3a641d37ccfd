package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/niagarahome/launcher/internal/catalog"
	"github.com/niagarahome/launcher/internal/config"
	"github.com/niagarahome/launcher/internal/model"
	"github.com/niagarahome/launcher/internal/platform"
	"github.com/niagarahome/launcher/internal/scrubber"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	source       catalog.Source
	scrubber     *scrubber.Scrubber

	home        *HomePage
	drawer      *fyne.Container
	searchEntry *widget.Entry
	list        *widget.List
	strip       *AlphabetStrip
	popup       *LetterPopup
	rowHeight   float32

	apps     []model.App
	rows     []model.Row // rows for the current query
	shown    []model.Row // rows displayed, rows or one isolated letter
	query    string
	isolated bool

	// Launchers, replaceable in tests
	launch    func(target string) error
	openStore func(query string) error

	unsubscribe []func()
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, source catalog.Source) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		source:       source,
		scrubber:     scrubber.New(settings.Tunables()),
		launch:       platform.Launch,
		openStore:    platform.OpenStoreSearch,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.unsubscribe = append(ui.unsubscribe,
		ui.scrubber.Subscribe(ui.onScrubberEvent),
		source.Subscribe(func() { fyne.Do(ui.reload) }),
	)
	ui.reload()

	log.Printf("RootUI initialized with %d apps", len(ui.apps))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.home = NewHomePage(ui.localization.GetText(KeySwipeHint), ui.mobile.GetMobilePadding(), ui.onHomeGesture)

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.onSearchChanged
	ui.searchEntry.OnSubmitted = ui.onSearchSubmitted

	homeBtn := widget.NewButton(IconHome, ui.ShowHome)
	homeBtn.Importance = widget.LowImportance
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	topPanel := container.NewBorder(nil, nil, homeBtn, settingsBtn, ui.searchEntry)

	ui.list = widget.NewList(
		func() int {
			return len(ui.shown)
		},
		newRowTemplate,
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(ui.shown) {
				return
			}
			updateRowItem(ui.shown[id], item, ui.localization)
		},
	)
	ui.list.OnSelected = ui.onRowSelected
	ui.rowHeight = newRowTemplate().MinSize().Height

	ui.strip = NewAlphabetStrip(ui.scrubber,
		float32(ui.settings.GetStripWidth()),
		float32(ui.settings.GetStripVerticalPadding()))
	ui.popup = NewLetterPopup()

	content := container.NewBorder(topPanel, nil, nil, ui.strip, ui.list)
	overlay := container.NewWithoutLayout(ui.popup)
	ui.drawer = container.NewStack(content, overlay)
	ui.drawer.Hide()

	ui.window.SetContent(container.NewStack(ui.home, ui.drawer))
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			ui.ShowHome()
		}
	})

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyLauncher), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.home.SetHint(ui.localization.GetText(KeySwipeHint))
	ui.list.Refresh()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings pushes persisted settings into the strip. A gesture in
// flight keeps the tunables it started with.
func (ui *RootUI) applySettings() {
	ui.scrubber.SetTunables(ui.settings.Tunables())
	ui.strip.SetStripSize(
		float32(ui.settings.GetStripWidth()),
		float32(ui.settings.GetStripVerticalPadding()))
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.restoreRows()
}

// StartClock refreshes the home clock until ctx is done
func (ui *RootUI) StartClock(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(ClockRefresh)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				fyne.Do(func() { ui.home.UpdateClock(now) })
			}
		}
	}()
}

// Close releases subscriptions
func (ui *RootUI) Close() {
	for _, unsubscribe := range ui.unsubscribe {
		unsubscribe()
	}
	ui.unsubscribe = nil
}

// ShowDrawer opens the app list
func (ui *RootUI) ShowDrawer() {
	ui.home.Hide()
	ui.drawer.Show()
	if ui.mobile.ShouldFocusSearch() {
		ui.window.Canvas().Focus(ui.searchEntry)
	}
}

// ShowHome closes the app list and clears the search
func (ui *RootUI) ShowHome() {
	ui.scrubber.Cancel()
	ui.searchEntry.SetText("")
	if ui.query != "" {
		ui.onSearchChanged("")
	}
	ui.drawer.Hide()
	ui.home.UpdateClock(time.Now())
	ui.home.Show()
}

func (ui *RootUI) onHomeGesture(g GestureType) {
	if g == GestureSwipeUp {
		ui.ShowDrawer()
	}
}

// reload fetches the catalog and rebuilds the rows
func (ui *RootUI) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), CatalogLoadTimeout)
	defer cancel()

	apps, err := ui.source.Apps(ctx)
	if err != nil {
		log.Printf("Failed to load apps: %v", err)
		dialog.ShowError(fmt.Errorf("failed to load apps: %w", err), ui.window)
		return
	}
	ui.apps = apps
	log.Printf("Catalog loaded: %d apps", len(apps))
	ui.applyQuery()
}

// applyQuery rebuilds the rows for the current query and hands them to the
// scrubber. The strip is hidden while searching.
func (ui *RootUI) applyQuery() {
	if ui.query == "" {
		ui.rows = model.BuildRows(ui.apps)
		ui.strip.Show()
	} else {
		ui.rows = catalog.SearchRows(ui.apps, ui.query)
		ui.strip.Hide()
	}
	ui.scrubber.SetItems(model.Entries(ui.rows))
	ui.shown = ui.rows
	ui.isolated = false
	ui.popup.Hide()
	ui.list.UnselectAll()
	ui.list.Refresh()
	ui.strip.Refresh()
}

// restoreRows leaves single-letter isolation
func (ui *RootUI) restoreRows() {
	if !ui.isolated {
		return
	}
	ui.isolated = false
	ui.shown = ui.rows
	ui.list.Refresh()
}

func (ui *RootUI) onSearchChanged(text string) {
	ui.query = text
	ui.applyQuery()
}

// onSearchSubmitted launches the first app match, or searches the store
// when nothing matches
func (ui *RootUI) onSearchSubmitted(_ string) {
	for _, row := range ui.rows {
		if row.Kind == model.RowApp {
			ui.launchApp(row.App)
			return
		}
	}
	if ui.query != "" {
		ui.searchStore(ui.query)
	}
}

func (ui *RootUI) onRowSelected(id widget.ListItemID) {
	defer ui.list.UnselectAll()
	if id < 0 || id >= len(ui.shown) {
		return
	}
	row := ui.shown[id]
	switch row.Kind {
	case model.RowApp:
		ui.launchApp(row.App)
	case model.RowStoreSearch:
		ui.searchStore(row.Query)
	}
}

func (ui *RootUI) launchApp(app model.App) {
	if err := ui.launch(app.Target); err != nil {
		log.Printf("Failed to launch %s: %v", app.Label, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorLaunching), err), ui.window)
		return
	}
	ui.ShowHome()
}

func (ui *RootUI) searchStore(query string) {
	if err := ui.openStore(query); err != nil {
		log.Printf("Failed to open store search for %q: %v", query, err)
		dialog.ShowError(err, ui.window)
	}
}

// onScrubberEvent reacts to strip gestures
func (ui *RootUI) onScrubberEvent(ev scrubber.Event) {
	switch e := ev.(type) {
	case scrubber.LetterSelected:
		if ui.settings.GetStripSelectMode() == config.SelectIsolate {
			ui.shown = catalog.FilterLetter(ui.rows, e.Letter)
			ui.isolated = true
			ui.list.Refresh()
			ui.list.ScrollToTop()
			return
		}
		ui.list.ScrollTo(e.Position)
	case scrubber.FineScroll:
		ui.restoreRows()
		content := listContentHeight(len(ui.shown), ui.rowHeight, theme.Padding())
		ui.list.ScrollToOffset(fineScrollOffset(e.Fraction, content, ui.list.Size().Height))
	case scrubber.PreviewShown:
		if !e.HasLetter {
			ui.popup.Hide()
			return
		}
		origin := ui.strip.Position()
		right := origin.X + ui.strip.touchMargin() - PopupGap
		ui.popup.ShowLetter(e.Letter, right, origin.Y+e.AnchorY)
	case scrubber.PreviewHidden:
		ui.popup.Hide()
		ui.restoreRows()
	case scrubber.HapticTick:
		ui.strip.Flash()
	}
}
