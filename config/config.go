package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL            string
	RedisAddress     string
	RegistrationCode string
}

// GetRegistrationCode returns the shared secret gating doctor self-registration
func (c *AppConfig) GetRegistrationCode() string {
	return c.RegistrationCode
}
