// Seeds an admin user. Registration has no HTTP endpoint, so admin
// accounts are created out of band with this command.
package main

import (
	"context"
	"flag"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	userModel "tourdesk/internal/domains/user/model"
	userRepository "tourdesk/internal/domains/user/repository"
	"tourdesk/shared/constant"
	"tourdesk/shared/logger"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/password"
	"tourdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	username := flag.String("username", "", "username of the admin user")
	email := flag.String("email", "", "email of the admin user")
	pass := flag.String("password", "", "password of the admin user")
	role := flag.String("role", constant.RoleAdmin, "role of the admin user (admin or manager)")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if *username == "" || *email == "" || *pass == "" {
		log.Fatal().Msg("username, email and password are required")
	}

	if *role != constant.RoleAdmin && *role != constant.RoleManager {
		log.Fatal().Str("role", *role).Msg("role must be admin or manager")
	}

	hashed, err := password.Hash(*pass)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	db := postgres.New(cfg)
	defer db.Close()

	repo := userRepository.New(db, otel.New(cfg))

	user := userModel.User{
		Username:     *username,
		Email:        *email,
		PasswordHash: hashed,
		Role:         *role,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}

	if err := repo.Insert(context.Background(), user); err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}

	log.Info().Str("username", *username).Str("role", *role).Msg("admin user created")
}
