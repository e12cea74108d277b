// This file is part of Chordpad.
//
// Chordpad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chordpad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chordpad.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/chordpad/chordpad/prefs"
)

// Config is the environment configuration.
type Config struct {
	Resources string `env:"CHORDPAD_RESOURCES"`
	Prefs     string `env:"CHORDPAD_PREFS" envDefault:"preferences"`
	Device    string `env:"CHORDPAD_DEVICE" envDefault:"/dev/input/event0"`
	EchoLog   bool   `env:"CHORDPAD_ECHO_LOG" envDefault:"false"`

	// same format as the -prefs command line argument. eg.
	// "hotkeys.enabled::false; joystick.1.output::true"
	CommandLinePrefs string `env:"CHORDPAD_CMDPREFS"`
}

// Load the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Prefs == "" {
		cfg.Prefs = prefs.DefaultPrefsFile
	}
	return cfg, nil
}
