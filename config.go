package slogtune

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML override file.
func LoadConfig(cfgFile string) (*Config, error) {
	data, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %q", cfgFile)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "unmarshalling config file %q", cfgFile)
	}
	return &cfg, nil
}

// ApplyConfig applies a loaded override file through the same resolution path
// as command-line overrides, bracket expansion included. The root level is
// applied first, then the overrides in file order.
func (a *Applier) ApplyConfig(cfg *Config) error {
	if cfg.LogLevel != "" {
		lvl, err := ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		if err := a.Apply(lvl, nil); err != nil {
			return err
		}
	}
	for _, o := range cfg.Overrides {
		lvl, err := ParseLevel(o.Level)
		if err != nil {
			return err
		}
		if err := a.Apply(lvl, o.Namespaces); err != nil {
			return err
		}
	}
	return nil
}

// WatchConfig watches the override file for changes and re-applies it on
// every write during program runtime. Watching stops when the file is removed
// or renamed, or when the returned channel is closed. Errors while re-applying
// are reported to the operator but do not stop the watcher.
func (a *Applier) WatchConfig(cfgFile string) (chan struct{}, error) {
	if !checkFileExists(cfgFile) {
		return nil, errors.Errorf("config file %q is missing", cfgFile)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(cfgFile); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	doneCh := make(chan struct{})
	go func() {
		closeWatcher := func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(a.out, "! config file watcher error: %v\n", err)
			}
		}
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				switch {
				case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
					closeWatcher()
					return
				case event.Has(fsnotify.Write):
					cfg, err := LoadConfig(cfgFile)
					if err != nil {
						fmt.Fprintf(a.out, "! %v\n", err)
						continue
					}
					if err := a.ApplyConfig(cfg); err != nil {
						fmt.Fprintf(a.out, "! %v\n", err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(a.out, "! config file watcher error: %v\n", err)
			case <-doneCh:
				closeWatcher()
				return
			}
		}
	}()
	return doneCh, nil
}

// checkFileExists returns true if a file exists at that location on disk.
func checkFileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !errors.Is(err, os.ErrNotExist)
}
