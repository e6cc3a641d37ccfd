package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/niagarahome/launcher/internal/scrubber"
)

// Profile is a shareable snapshot of the strip settings, stored as TOML
type Profile struct {
	Strip   StripProfile   `toml:"strip"`
	Gesture GestureProfile `toml:"gesture"`
	Bulge   BulgeProfile   `toml:"bulge"`
}

// StripProfile holds the strip layout settings
type StripProfile struct {
	Width           int             `toml:"width"`
	VerticalPadding int             `toml:"vertical_padding"`
	TouchMargin     int             `toml:"touch_margin"`
	SelectMode      StripSelectMode `toml:"select_mode"`
}

// GestureProfile holds the fine-mode settings
type GestureProfile struct {
	FineScrollDistance int     `toml:"fine_scroll_distance"`
	FineModeThreshold  float64 `toml:"fine_mode_threshold"`
}

// BulgeProfile holds the deformation settings
type BulgeProfile struct {
	HighlightScale float64 `toml:"highlight_scale"`
	Margin         int     `toml:"margin"`
	Radius         float64 `toml:"radius"`
}

// DefaultProfile returns a profile with every setting at its default
func DefaultProfile() Profile {
	return Profile{
		Strip: StripProfile{
			Width:           DefaultStripWidth,
			VerticalPadding: DefaultStripVPadding,
			TouchMargin:     DefaultStripTouchMargin,
			SelectMode:      DefaultStripSelectMode,
		},
		Gesture: GestureProfile{
			FineScrollDistance: DefaultFineScrollDist,
			FineModeThreshold:  DefaultFineModeThreshold,
		},
		Bulge: BulgeProfile{
			HighlightScale: DefaultHighlightScale,
			Margin:         DefaultBulgeMargin,
			Radius:         DefaultBulgeRadius,
		},
	}
}

// Tunables converts the profile into scrubber tunables
func (p Profile) Tunables() scrubber.Tunables {
	return scrubber.Tunables{
		FineModeThreshold: float32(clampFloat(p.Gesture.FineModeThreshold, MinFineThreshold, MaxFineThreshold)),
		PullThreshold:     float32(clampInt(p.Gesture.FineScrollDistance, 0, MaxFineScrollDist)),
		TouchMargin:       float32(clampInt(p.Strip.TouchMargin, 0, MaxTouchMargin)),
		HighlightScale:    float32(clampFloat(p.Bulge.HighlightScale, MinHighlightScale, MaxHighlightScale)),
		BulgeMargin:       float32(clampInt(p.Bulge.Margin, 0, MaxBulgeMargin)),
		BulgeRadius:       float32(clampFloat(p.Bulge.Radius, MinBulgeRadius, MaxBulgeRadius)),
	}
}

// LoadProfile reads a TOML profile. Keys missing from the file keep their
// default values.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	p := DefaultProfile()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return p, nil
}

// SaveProfile writes p as TOML to path, creating parent directories
func SaveProfile(path string, p Profile) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// Profile snapshots the stored settings
func (s *Settings) Profile() Profile {
	return Profile{
		Strip: StripProfile{
			Width:           s.GetStripWidth(),
			VerticalPadding: s.GetStripVerticalPadding(),
			TouchMargin:     s.GetTouchMargin(),
			SelectMode:      s.GetStripSelectMode(),
		},
		Gesture: GestureProfile{
			FineScrollDistance: s.GetFineScrollDistance(),
			FineModeThreshold:  s.GetFineModeThreshold(),
		},
		Bulge: BulgeProfile{
			HighlightScale: s.GetHighlightScale(),
			Margin:         s.GetBulgeMargin(),
			Radius:         s.GetBulgeRadius(),
		},
	}
}

// ApplyProfile stores every value of p, clamped by the regular setters
func (s *Settings) ApplyProfile(p Profile) {
	s.SetStripWidth(p.Strip.Width)
	s.SetStripVerticalPadding(p.Strip.VerticalPadding)
	s.SetTouchMargin(p.Strip.TouchMargin)
	s.SetStripSelectMode(p.Strip.SelectMode)
	s.SetFineScrollDistance(p.Gesture.FineScrollDistance)
	s.SetFineModeThreshold(p.Gesture.FineModeThreshold)
	s.SetHighlightScale(p.Bulge.HighlightScale)
	s.SetBulgeMargin(p.Bulge.Margin)
	s.SetBulgeRadius(p.Bulge.Radius)
}
