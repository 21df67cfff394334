package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to edubot! Let's configure the relay.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Upstream endpoint.
	urlPrompt := promptui.Prompt{
		Label:   "Chat completions URL",
		Default: cfg.Upstream.URL,
	}
	if cfg.Upstream.URL, err = urlPrompt.Run(); err != nil {
		return nil, fmt.Errorf("upstream url: %w", err)
	}

	// 3. Models.
	primaryPrompt := promptui.Prompt{
		Label:   "Primary model id",
		Default: cfg.Primary.ID,
	}
	if cfg.Primary.ID, err = primaryPrompt.Run(); err != nil {
		return nil, fmt.Errorf("primary model: %w", err)
	}
	secondaryPrompt := promptui.Prompt{
		Label:   "Secondary model id",
		Default: cfg.Secondary.ID,
	}
	if cfg.Secondary.ID, err = secondaryPrompt.Run(); err != nil {
		return nil, fmt.Errorf("secondary model: %w", err)
	}

	// 4. CORS origins.
	originsPrompt := promptui.Prompt{
		Label:   "Allowed origins (comma-separated, leave blank to allow all)",
		Default: "",
	}
	originsStr, err := originsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("allowed origins: %w", err)
	}
	if origins := splitAndTrim(originsStr); len(origins) > 0 {
		cfg.Server.AllowAll = false
		cfg.Server.AllowedOrigins = origins
	}

	// 5. Admin key for /admin/feedback.
	adminPrompt := promptui.Prompt{
		Label: "Admin key for the feedback listing (blank disables it)",
		Mask:  '*',
	}
	if cfg.AdminKey, err = adminPrompt.Run(); err != nil {
		return nil, fmt.Errorf("admin key: %w", err)
	}

	// 6. Log level.
	levelPrompt := promptui.Select{
		Label: "Log level",
		Items: []string{"info", "debug", "warn", "error"},
	}
	if _, cfg.Log.Level, err = levelPrompt.Run(); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if os.Getenv(APIKeyEnvVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment before running edubot serve.\n", APIKeyEnvVar)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
