package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// RedisAddr selects the Redis-backed offer index when set;
	// an empty value falls back to the in-process index.
	RedisAddr string
}
