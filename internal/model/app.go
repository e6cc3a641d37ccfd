package model

// App is a launchable entry of the catalog
type App struct {
	ID     string
	Label  string
	Target string // desktop file, URL or command handed to the platform opener
	Hidden bool
}

// Letter returns the sort letter of the app label
func (a App) Letter() Letter {
	return LetterOf(a.Label)
}

// RowKind enumerates the kinds of rows shown in the app list
type RowKind int

const (
	RowHeader RowKind = iota
	RowApp
	RowStoreSearch
)

// String returns a human-friendly name for the row kind
func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "Header"
	case RowApp:
		return "App"
	case RowStoreSearch:
		return "StoreSearch"
	default:
		return "Unknown"
	}
}

// Row is one line of the displayed app list
type Row struct {
	Kind   RowKind
	Letter Letter // header and app rows
	App    App    // app rows only
	Query  string // store search rows only
}

// ID returns a stable identifier for the row
func (r Row) ID() string {
	switch r.Kind {
	case RowHeader:
		return "header:" + r.Letter.String()
	case RowApp:
		return r.App.ID
	default:
		return "store:" + r.Query
	}
}

// HeaderRow creates a section header row
func HeaderRow(letter Letter) Row {
	return Row{Kind: RowHeader, Letter: letter}
}

// AppRow creates an app row
func AppRow(app App) Row {
	return Row{Kind: RowApp, Letter: app.Letter(), App: app}
}

// StoreSearchRow creates the trailing "search the store" row
func StoreSearchRow(query string) Row {
	return Row{Kind: RowStoreSearch, Query: query}
}

// BuildRows groups sorted apps into sections, inserting a header row every
// time the sort letter changes.
func BuildRows(apps []App) []Row {
	rows := make([]Row, 0, len(apps)+27)
	var last Letter
	for i, app := range apps {
		letter := app.Letter()
		if i == 0 || letter != last {
			rows = append(rows, HeaderRow(letter))
			last = letter
		}
		rows = append(rows, AppRow(app))
	}
	return rows
}

// Entries projects rows onto the lettered sequence consumed by the scrubber.
// Store search rows carry no letter and are skipped.
func Entries(rows []Row) []Entry {
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		if r.Kind == RowStoreSearch {
			continue
		}
		entries = append(entries, Entry{Letter: r.Letter, ID: r.ID()})
	}
	return entries
}
