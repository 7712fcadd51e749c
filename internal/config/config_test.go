package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestReadConfig(t *testing.T) {
	var (
		err         error
		projectRoot string
	)

	// Get the project root by going up from internal/config
	projectRoot, err = filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	configPath := filepath.Join(projectRoot, "etc") + string(filepath.Separator)

	var cfg Config

	cfg, err = ReadConfig(configPath)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	if cfg.Webserver.Session.ExpiryTime < time.Minute {
		t.Error("Webserver.Session.ExpiryTime should be at least a minute")
	}

	if cfg.DB.Host == "" {
		t.Error("DB.Host should not be empty")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "port zero",
			cfg:     Config{Webserver: Webserver{URL: "http://localhost"}},
			wantErr: true,
		},
		{
			name:    "empty url",
			cfg:     Config{Webserver: Webserver{Port: 8080}},
			wantErr: true,
		},
		{
			name:    "valid",
			cfg:     Config{Webserver: Webserver{Port: 8080, URL: "http://localhost"}},
			wantErr: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(tc.cfg)
			if (err != nil) != tc.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{Title: "GoRetail-Admin", Webserver: Webserver{Port: 8080, URL: "http://localhost"}}

	out, err := DumpConfig(cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if out == "" {
		t.Error("DumpConfig() should not return an empty string")
	}

	jsonOut, err := DumpConfigJSON(cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if jsonOut == "" {
		t.Error("DumpConfigJSON() should not return an empty string")
	}
}
