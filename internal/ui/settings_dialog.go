package ui

import (
	"fmt"
	"log"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/niagarahome/launcher/internal/config"
)

// ProfileExtension is the file extension of exported tunables profiles
const ProfileExtension = ".toml"

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	stripWidthEntry   *widget.Entry
	stripPaddingEntry *widget.Entry
	touchMarginEntry  *widget.Entry
	fineDistEntry     *widget.Entry
	fineThreshSlider  *widget.Slider
	highlightSlider   *widget.Slider
	bulgeMarginEntry  *widget.Entry
	bulgeRadiusSlider *widget.Slider
	selectModeRadio   *widget.RadioGroup
	languageSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were persisted.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) text(key string) string {
	return sd.localization.GetText(key)
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.stripWidthEntry = widget.NewEntry()
	sd.stripWidthEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinStripWidth, config.MaxStripWidth))
	sd.stripPaddingEntry = widget.NewEntry()
	sd.stripPaddingEntry.SetPlaceHolder(fmt.Sprintf("0-%d", config.MaxStripVPadding))
	sd.touchMarginEntry = widget.NewEntry()
	sd.touchMarginEntry.SetPlaceHolder(fmt.Sprintf("0-%d", config.MaxTouchMargin))
	sd.fineDistEntry = widget.NewEntry()
	sd.fineDistEntry.SetPlaceHolder(fmt.Sprintf("0-%d", config.MaxFineScrollDist))
	sd.bulgeMarginEntry = widget.NewEntry()
	sd.bulgeMarginEntry.SetPlaceHolder(fmt.Sprintf("0-%d", config.MaxBulgeMargin))

	sd.fineThreshSlider = widget.NewSlider(config.MinFineThreshold, config.MaxFineThreshold)
	sd.fineThreshSlider.Step = 0.05
	sd.highlightSlider = widget.NewSlider(config.MinHighlightScale, config.MaxHighlightScale)
	sd.highlightSlider.Step = 0.1
	sd.bulgeRadiusSlider = widget.NewSlider(config.MinBulgeRadius, config.MaxBulgeRadius)
	sd.bulgeRadiusSlider.Step = 0.1

	modeOptions := []string{}
	for _, mode := range sd.settings.GetStripSelectModeOptions() {
		modeOptions = append(modeOptions, string(mode))
	}
	sd.selectModeRadio = widget.NewRadioGroup(modeOptions, nil)
	sd.selectModeRadio.Horizontal = true

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	strip := widget.NewForm(
		widget.NewFormItem(sd.text(KeyStripWidth), sd.stripWidthEntry),
		widget.NewFormItem(sd.text(KeyStripPadding), sd.stripPaddingEntry),
		widget.NewFormItem(sd.text(KeyTouchMargin), sd.touchMarginEntry),
		widget.NewFormItem(sd.text(KeyHighlightScale), sd.highlightSlider),
		widget.NewFormItem(sd.text(KeyBulgeMargin), sd.bulgeMarginEntry),
		widget.NewFormItem(sd.text(KeyBulgeRadius), sd.bulgeRadiusSlider),
	)
	gesture := widget.NewForm(
		widget.NewFormItem(sd.text(KeyFineScrollDistance), sd.fineDistEntry),
		widget.NewFormItem(sd.text(KeyFineModeThreshold), sd.fineThreshSlider),
		widget.NewFormItem(sd.text(KeySelectMode), sd.selectModeRadio),
		widget.NewFormItem(sd.text(KeyLanguage), sd.languageSelect),
	)

	buttons := container.NewHBox(
		widget.NewButton(sd.text(KeyReset), sd.onReset),
		widget.NewButton(sd.text(KeyImportProfile), sd.onImport),
		widget.NewButton(sd.text(KeyExportProfile), sd.onExport),
	)

	form := container.NewVScroll(container.NewVBox(
		widget.NewLabel(sd.text(KeyStripSection)),
		widget.NewSeparator(),
		strip,
		widget.NewSeparator(),
		widget.NewLabel(sd.text(KeyGestureSection)),
		widget.NewSeparator(),
		gesture,
		widget.NewSeparator(),
		buttons,
	))

	sd.dialog = dialog.NewCustomConfirm(
		sd.text(KeySettings),
		sd.text(KeySave),
		sd.text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.stripWidthEntry.SetText(strconv.Itoa(sd.settings.GetStripWidth()))
	sd.stripPaddingEntry.SetText(strconv.Itoa(sd.settings.GetStripVerticalPadding()))
	sd.touchMarginEntry.SetText(strconv.Itoa(sd.settings.GetTouchMargin()))
	sd.fineDistEntry.SetText(strconv.Itoa(sd.settings.GetFineScrollDistance()))
	sd.bulgeMarginEntry.SetText(strconv.Itoa(sd.settings.GetBulgeMargin()))
	sd.fineThreshSlider.SetValue(sd.settings.GetFineModeThreshold())
	sd.highlightSlider.SetValue(sd.settings.GetHighlightScale())
	sd.bulgeRadiusSlider.SetValue(sd.settings.GetBulgeRadius())
	sd.selectModeRadio.SetSelected(string(sd.settings.GetStripSelectMode()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// saveInt stores a numeric entry; empty or malformed input keeps the
// current value
func saveInt(entry *widget.Entry, set func(int)) {
	if entry.Text == "" {
		return
	}
	if v, err := strconv.Atoi(entry.Text); err == nil {
		set(v)
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	saveInt(sd.stripWidthEntry, sd.settings.SetStripWidth)
	saveInt(sd.stripPaddingEntry, sd.settings.SetStripVerticalPadding)
	saveInt(sd.touchMarginEntry, sd.settings.SetTouchMargin)
	saveInt(sd.fineDistEntry, sd.settings.SetFineScrollDistance)
	saveInt(sd.bulgeMarginEntry, sd.settings.SetBulgeMargin)

	sd.settings.SetFineModeThreshold(sd.fineThreshSlider.Value)
	sd.settings.SetHighlightScale(sd.highlightSlider.Value)
	sd.settings.SetBulgeRadius(sd.bulgeRadiusSlider.Value)

	if sd.selectModeRadio.Selected != "" {
		sd.settings.SetStripSelectMode(config.StripSelectMode(sd.selectModeRadio.Selected))
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.text(KeySettings), sd.text(KeySettingsSaved), sd.window)
}

// onReset restores the defaults
func (sd *SettingsDialog) onReset() {
	sd.settings.ResetAll()
	sd.loadCurrentSettings()
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// onImport reads a TOML profile and persists it
func (sd *SettingsDialog) onImport() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := sd.importProfile(path); err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		dialog.ShowInformation(sd.text(KeySettings), sd.text(KeyProfileImported), sd.window)
	}, sd.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{ProfileExtension}))
	open.Show()
}

// onExport writes the current tunables as a TOML profile
func (sd *SettingsDialog) onExport() {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := config.SaveProfile(path, sd.settings.Profile()); err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		log.Printf("Profile exported to %s", path)
		dialog.ShowInformation(sd.text(KeySettings), sd.text(KeyProfileExported), sd.window)
	}, sd.window)
	save.SetFileName("niagara-profile" + ProfileExtension)
	save.Show()
}

func (sd *SettingsDialog) importProfile(path string) error {
	p, err := config.LoadProfile(path)
	if err != nil {
		return err
	}
	sd.settings.ApplyProfile(p)
	sd.loadCurrentSettings()
	if sd.onSaved != nil {
		sd.onSaved()
	}
	log.Printf("Profile imported from %s", path)
	return nil
}
