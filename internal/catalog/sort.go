package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/niagarahome/launcher/internal/model"
)

// SortApps returns a copy of apps grouped by sort letter, A to Z with the
// '#' section last, each section ordered case-insensitively by label. Ties
// are broken by ID so the order is stable across reloads.
func SortApps(apps []model.App) []model.App {
	out := append([]model.App(nil), apps...)
	col := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		if ri, rj := letterRank(out[i].Letter()), letterRank(out[j].Letter()); ri != rj {
			return ri < rj
		}
		if c := col.CompareString(out[i].Label, out[j].Label); c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// letterRank orders sections: 'A'..'Z' then LetterOther
func letterRank(l model.Letter) int {
	if l.IsAlpha() {
		return int(l - 'A')
	}
	return 'Z' - 'A' + 1
}

// Visible drops hidden apps
func Visible(apps []model.App) []model.App {
	out := make([]model.App, 0, len(apps))
	for _, a := range apps {
		if !a.Hidden {
			out = append(out, a)
		}
	}
	return out
}

// FilterQuery keeps the apps whose label contains query, ignoring case. An
// empty query keeps everything.
func FilterQuery(apps []model.App, query string) []model.App {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]model.App(nil), apps...)
	}
	fold := cases.Fold()
	needle := fold.String(query)
	out := make([]model.App, 0, len(apps))
	for _, a := range apps {
		if strings.Contains(fold.String(a.Label), needle) {
			out = append(out, a)
		}
	}
	return out
}

// SearchRows builds the rows shown while a search is active: the matching
// apps grouped by letter, followed by the store search row.
func SearchRows(apps []model.App, query string) []model.Row {
	rows := model.BuildRows(FilterQuery(apps, query))
	return append(rows, model.StoreSearchRow(strings.TrimSpace(query)))
}

// FilterLetter isolates one letter section: its header and apps
func FilterLetter(rows []model.Row, letter model.Letter) []model.Row {
	out := make([]model.Row, 0)
	for _, r := range rows {
		if r.Kind != model.RowStoreSearch && r.Letter == letter {
			out = append(out, r)
		}
	}
	return out
}
