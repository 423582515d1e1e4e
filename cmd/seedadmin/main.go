// Command seedadmin creates (or resets) the initial ADMIN user so a fresh
// deployment can log in.
package main

import (
	"context"
	"errors"
	"flag"

	"github.com/MotoWorkShop/MWSBackend/internal/config"
	"github.com/MotoWorkShop/MWSBackend/internal/infra"
	"github.com/MotoWorkShop/MWSBackend/internal/model"
	"github.com/MotoWorkShop/MWSBackend/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	var (
		nombre   = flag.String("nombre", "Administrador", "nombre del usuario")
		email    = flag.String("email", "admin@motoworkshop.local", "email del usuario")
		password = flag.String("password", "", "contraseña (obligatoria)")
	)
	flag.Parse()

	if *password == "" {
		log.Fatal().Msg("la bandera -password es obligatoria")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuración")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL, cfg.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo calcular el hash")
	}

	ctx := context.Background()
	usuarios := repository.NewUsuarioRepository(db)

	existente, err := usuarios.FindByEmail(ctx, *email)
	switch {
	case err == nil:
		existente.Nombre = *nombre
		existente.PasswordHash = string(hash)
		existente.Rol = model.RolAdmin
		existente.Activo = true
		if err := usuarios.Update(ctx, existente); err != nil {
			log.Fatal().Err(err).Msg("no se pudo actualizar el admin")
		}
		log.Info().Str("email", *email).Msg("admin actualizado")
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin := &model.Usuario{
			Nombre:       *nombre,
			Email:        *email,
			PasswordHash: string(hash),
			Rol:          model.RolAdmin,
			Activo:       true,
		}
		if err := usuarios.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("no se pudo crear el admin")
		}
		log.Info().Str("email", *email).Msg("admin creado")
	default:
		log.Fatal().Err(err).Msg("error consultando usuarios")
	}
}
