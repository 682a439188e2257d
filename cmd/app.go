// Package cmd implements the CLI application to track personal income
// and expenses.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"

	savemoney "github.com/etnz/savemoney"
	"github.com/etnz/savemoney/i18n"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{txType: savemoney.Income}, "transactions")
	c.Register(&addCmd{txType: savemoney.Expense}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&listCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&backupCmd{}, "data")
	c.Register(&restoreCmd{}, "data")
	c.Register(&resetCmd{}, "data")

	c.Register(&themeCmd{}, "settings")
	c.Register(&langCmd{}, "settings")
	c.Register(&pinCmd{}, "settings")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data", "", "Path to the transactions snapshot. Defaults to the user data directory.")
var configFile = flag.String("config", "", "Path to the settings file. Defaults to the user config directory.")

// OpenStore resolves the snapshot store from the -data flag or the
// default location.
func OpenStore() (*savemoney.Store, error) {
	if *dataFile != "" {
		return savemoney.NewStore(*dataFile), nil
	}
	return savemoney.DefaultStore()
}

// OpenLedger loads the ledger from the snapshot store, with auto-save
// attached.
func OpenLedger() (*savemoney.Ledger, error) {
	store, err := OpenStore()
	if err != nil {
		return nil, err
	}
	return store.Load(), nil
}

// SettingsPath resolves the settings file from the -config flag or the
// default location.
func SettingsPath() (string, error) {
	if *configFile != "" {
		return *configFile, nil
	}
	return savemoney.DefaultSettingsPath()
}

// OpenSettings loads the settings and returns them with the path they
// save back to.
func OpenSettings() (savemoney.Settings, string, error) {
	path, err := SettingsPath()
	if err != nil {
		return savemoney.Settings{}, "", err
	}
	return savemoney.LoadSettings(path), path, nil
}

// OpenTable loads the settings and the translation table for the
// configured language.
func OpenTable() (*i18n.Table, savemoney.Settings, error) {
	settings, _, err := OpenSettings()
	if err != nil {
		return nil, settings, err
	}
	table, err := i18n.Load(settings.Language)
	if err != nil {
		return nil, settings, fmt.Errorf("could not load translations: %w", err)
	}
	return table, settings, nil
}
