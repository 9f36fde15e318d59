package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config đọc biến môi trường, nạp .env ở lần gọi đầu tiên
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Không tìm thấy file .env, dùng biến môi trường hệ thống")
		}
	})
	return os.Getenv(key)
}

func ConfigDefault(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}

func Int(key string, def int) int {
	v := Config(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Giá trị %s=%q không hợp lệ, dùng mặc định %d", key, v, def)
		return def
	}
	return n
}

// Duration parses values like "10s" or "30m".
func Duration(key string, def time.Duration) time.Duration {
	v := Config(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Giá trị %s=%q không hợp lệ, dùng mặc định %s", key, v, def)
		return def
	}
	return d
}
