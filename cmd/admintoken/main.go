package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/AbdelazizSaid250/membership-service/internal/transport/http/middleware"
)

type tokenConfig struct {
	AdminSecret string `envconfig:"ADMIN_SECRET" required:"true"`
}

// Выпускает JWT администратора для маршрутов удаления всех записей
func main() {
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	var cfg tokenConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	token, err := middleware.IssueAdminToken(cfg.AdminSecret, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}
