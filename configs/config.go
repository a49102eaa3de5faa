package config

import (
	"os"
	"strconv"
)

type Storage struct {
	Endpoint     string
	PublicURL    string
	AccessKey    string
	SecretKey    string
	ImagesBucket string
	VideosBucket string
}

type Config struct {
	PostgresURI    string
	RedisURI       string
	Storage        Storage
	TranscoderURL  string
	UploadDir      string
	AdminUsername  string
	AdminPassword  string
	SecretKey      string
	CookieName     string
	RememberCookie string
	PostsPerPage   int
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", "127.0.0.1:6379"),
		Storage: Storage{
			Endpoint:     getEnv("STORAGE_ENDPOINT", ""),
			PublicURL:    getEnv("STORAGE_PUBLIC_URL", ""),
			AccessKey:    getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:    getEnv("STORAGE_SECRET_KEY", ""),
			ImagesBucket: getEnv("BLOG_IMAGES_BUCKET", "blog-images"),
			VideosBucket: getEnv("BLOG_VIDEOS_BUCKET", "blog-videos"),
		},
		TranscoderURL:  getEnv("TRANSCODER_URL", ""),
		UploadDir:      getEnv("UPLOAD_DIR", "/tmp/uploads"),
		AdminUsername:  getEnv("ADMIN_USERNAME", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		SecretKey:      getEnv("SECRET_KEY", ""),
		CookieName:     getEnv("COOKIE_NAME", "blog_session"),
		RememberCookie: getEnv("REMEMBER_COOKIE_NAME", "blog_remember"),
		PostsPerPage:   getEnvInt("POSTS_PER_PAGE", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
