// Package config provides configuration management for formnav.
//
// A configuration document holds the navigation policy (ordering
// behaviour and terminal submit label) and the form definitions the
// interactive host renders. Files ending in .toml are read and written as
// TOML; everything else is YAML.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/formnav/config.yaml or $HOME/.config/formnav/config.yaml
//   - macOS: $HOME/.config/formnav/config.yaml
//   - Windows: %LOCALAPPDATA%\formnav\config.yaml
//
// # Usage Example
//
//	doc, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	form, err := doc.Form("contact")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc.Navigation.Behaviour = navigator.ByTag
//	if err := doc.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// File writes are serialised by a package mutex and performed atomically
// (temporary file + rename).
package config
