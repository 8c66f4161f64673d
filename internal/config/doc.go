// Package config manages the orbytrixx settings file.
//
// Settings live in a small YAML file in the platform config directory:
//   - Linux: $XDG_CONFIG_HOME/orbytrixx/config.yaml or $HOME/.config/orbytrixx/config.yaml
//   - macOS: $HOME/.config/orbytrixx/config.yaml
//   - Windows: %LOCALAPPDATA%\orbytrixx\config.yaml
//
// A missing file is not an error; defaults are used. The relay access key
// can be kept out of the file entirely by exporting ORBYTRIXX_ACCESS_KEY.
//
//	settings, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	client := settings.Submission.NewClient()
//
// Save writes through a temporary file and a rename so a crash never leaves
// a truncated file behind.
package config
