// SPDX-License-Identifier: EPL-2.0

package config

import "github.com/joho/godotenv"

// loadDotEnv sets variables from file without overriding ones already
// present in the environment.
func loadDotEnv(file string) error {
	if file == "" {
		return godotenv.Load()
	}
	return godotenv.Load(file)
}
