package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	contents := "width: 20\nfloors: 5\nsecret_door_chance: 0.25\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Width != 20 || s.Floors != 5 {
		t.Errorf("Load overlay: width=%d floors=%d, want 20 and 5", s.Width, s.Floors)
	}
	if s.SecretDoorChance != 0.25 {
		t.Errorf("Load overlay: secret_door_chance=%v, want 0.25", s.SecretDoorChance)
	}
	// Unset keys keep their defaults.
	if s.Height != Default().Height || s.ViewRadius != Default().ViewRadius {
		t.Errorf("Load overwrote defaults: height=%d radius=%d", s.Height, s.ViewRadius)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load on a missing file succeeded, want error")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load on malformed YAML succeeded, want error")
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero width", func(s *Settings) { s.Width = 0 }},
		{"negative height", func(s *Settings) { s.Height = -2 }},
		{"zero floors", func(s *Settings) { s.Floors = 0 }},
		{"negative radius", func(s *Settings) { s.ViewRadius = -1 }},
		{"chance above one", func(s *Settings) { s.SecretDoorChance = 1.01 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Default()
			c.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
