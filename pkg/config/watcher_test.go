package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveConfig(DefaultConfig(), path); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Config, 4)
	watcher, err := NewWatcher(path, func(cfg *Config) {
		reloaded <- cfg
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := watcher.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer watcher.Stop()

	// rename-style save: the file appears fully written in one event
	updated := DefaultConfig()
	updated.Server.BatchSize = 11
	tmp := path + ".tmp"
	if err := SaveConfig(updated, tmp); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Server.BatchSize != 11 {
			t.Errorf("reloaded config stale: %+v", cfg.Server)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config change never observed")
	}
}

func TestWatcherCoalescesSaveBursts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveConfig(DefaultConfig(), path); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Config, 4)
	watcher, err := NewWatcher(path, func(cfg *Config) {
		reloaded <- cfg
	})
	if err != nil {
		t.Fatal(err)
	}
	watcher.debounce = 100 * time.Millisecond
	if err := watcher.Start(); err != nil {
		t.Fatal(err)
	}
	defer watcher.Stop()

	// two saves closer together than the debounce window: the reload
	// fires once the burst settles and must observe the last write
	for _, batch := range []int{7, 11} {
		cfg := DefaultConfig()
		cfg.Server.BatchSize = batch
		tmp := path + ".tmp"
		if err := SaveConfig(cfg, tmp); err != nil {
			t.Fatal(err)
		}
		if err := os.Rename(tmp, path); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case cfg := <-reloaded:
		if cfg.Server.BatchSize != 11 {
			t.Errorf("reload observed an intermediate write: %+v", cfg.Server)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("save burst never produced a reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := SaveConfig(DefaultConfig(), path); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Config, 4)
	watcher, err := NewWatcher(path, func(cfg *Config) {
		reloaded <- cfg
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := watcher.Start(); err != nil {
		t.Fatal(err)
	}
	defer watcher.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}
