package catalog

import (
	"fmt"

	"github.com/niagarahome/launcher/internal/model"
)

// DemoApps is the catalog seeded on first start. Targets are URLs so the
// platform opener can launch them everywhere.
func DemoApps() []model.App {
	entries := []struct{ label, target string }{
		{"Calendar", "https://calendar.google.com"},
		{"Camera", "https://webcamtests.com"},
		{"Chess", "https://lichess.org"},
		{"Clock", "https://time.is"},
		{"Docs", "https://docs.google.com"},
		{"Drive", "https://drive.google.com"},
		{"Files", "file:///"},
		{"Gmail", "https://mail.google.com"},
		{"Keep", "https://keep.google.com"},
		{"Maps", "https://maps.google.com"},
		{"Music", "https://music.youtube.com"},
		{"News", "https://news.google.com"},
		{"Notes", "https://notes.new"},
		{"Photos", "https://photos.google.com"},
		{"Podcasts", "https://podcasts.google.com"},
		{"Settings", "about:preferences"},
		{"Translate", "https://translate.google.com"},
		{"Weather", "https://weather.com"},
		{"Wikipedia", "https://wikipedia.org"},
		{"YouTube", "https://youtube.com"},
		{"Zoom", "https://zoom.us"},
		{"1Password", "https://1password.com"},
		{"7-Zip", "https://7-zip.org"},
		{"Étude", "https://example.org/etude"},
	}
	apps := make([]model.App, 0, len(entries))
	for i, e := range entries {
		apps = append(apps, model.App{ID: fmt.Sprintf("demo-%02d", i+1), Label: e.label, Target: e.target})
	}
	return apps
}
