package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"fail_fast":    false,
		"date_layouts": []string{},
		"log_level":    "info",
		"color":        "auto",
	}
}
