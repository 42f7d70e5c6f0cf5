package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DataDir   string
	AppURL    string
	JWTSecret string
	S3Bucket  string
	AWSRegion string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file was not found")
	}

	port, ok := os.LookupEnv("PORT")
	if !ok {
		port = "8080"
	}
	dataDir, ok := os.LookupEnv("DATA_DIR")
	if !ok {
		dataDir = "data"
	}
	appURL, ok := os.LookupEnv("APP_URL")
	if !ok {
		appURL = "http://localhost:" + port
	}
	secret, ok := os.LookupEnv("JWT_SECRET")
	if !ok {
		log.Println("JWT_SECRET not set, using insecure default")
		secret = "change-me"
	}

	return Config{
		Port:      port,
		DataDir:   dataDir,
		AppURL:    appURL,
		JWTSecret: secret,
		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),
		AWSRegion: os.Getenv("AWS_REGION"),
	}
}
