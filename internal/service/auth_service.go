package service

import (
	"context"
	"errors"
	"time"

	"github.com/MotoWorkShop/MWSBackend/internal/apierror"
	"github.com/MotoWorkShop/MWSBackend/internal/config"
	"github.com/MotoWorkShop/MWSBackend/internal/dto"
	"github.com/MotoWorkShop/MWSBackend/internal/model"
	"github.com/MotoWorkShop/MWSBackend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims is the JWT payload. Tipo distinguishes access from refresh tokens so
// a refresh token can never authenticate a request.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	Tipo   string `json:"tipo"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error)
	ValidarToken(token string) (*Claims, error)

	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*model.Usuario, error)
	ObtenerUsuario(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	ListarUsuarios(ctx context.Context, filter dto.ListFilter) ([]model.Usuario, int64, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*model.Usuario, error)
	EliminarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	usuarios  repository.UsuarioRepository
	secreto   []byte
	duracion  time.Duration
	dRefresco time.Duration
}

func NewAuthService(usuarios repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{
		usuarios:  usuarios,
		secreto:   []byte(cfg.JWTSecret),
		duracion:  time.Duration(cfg.JWTExpirationHours) * time.Hour,
		dRefresco: time.Duration(cfg.JWTRefreshHours) * time.Hour,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.usuarios.FindByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Credenciales inválidas")
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if !u.Activo {
		return nil, apierror.Conflict("El usuario está desactivado")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, apierror.NotFound("Credenciales inválidas")
	}
	return s.emitirTokens(u)
}

func (s *authService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims, err := s.ValidarToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Tipo != "refresh" {
		return nil, apierror.Conflict("El token no es un refresh token")
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	u, err := s.usuarios.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Usuario no encontrado")
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if !u.Activo {
		return nil, apierror.Conflict("El usuario está desactivado")
	}
	return s.emitirTokens(u)
}

func (s *authService) ValidarToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de firma inesperado")
		}
		return s.secreto, nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Conflict("Token inválido o expirado")
	}
	return claims, nil
}

func (s *authService) emitirTokens(u *model.Usuario) (*dto.LoginResponse, error) {
	access, err := s.firmar(u, "access", s.duracion)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	refresh, err := s.firmar(u, "refresh", s.dRefresco)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.duracion.Seconds()),
		User: dto.UsuarioResponse{
			ID:     u.ID.String(),
			Nombre: u.Nombre,
			Email:  u.Email,
			Rol:    u.Rol,
			Activo: u.Activo,
		},
	}, nil
}

func (s *authService) firmar(u *model.Usuario, tipo string, vigencia time.Duration) (string, error) {
	ahora := time.Now()
	claims := Claims{
		UserID: u.ID.String(),
		Email:  u.Email,
		Rol:    u.Rol,
		Tipo:   tipo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(ahora),
			ExpiresAt: jwt.NewNumericDate(ahora.Add(vigencia)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secreto)
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*model.Usuario, error) {
	if _, err := s.usuarios.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict("Ya existe un usuario con el email %s", req.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	u := &model.Usuario{
		Nombre:       req.Nombre,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		Activo:       true,
	}
	if err := s.usuarios.Create(ctx, u); err != nil {
		return nil, apierror.Internal(err)
	}
	return u, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, err := s.usuarios.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Usuario con id %s no encontrado", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return u, nil
}

func (s *authService) ListarUsuarios(ctx context.Context, filter dto.ListFilter) ([]model.Usuario, int64, error) {
	usuarios, total, err := s.usuarios.List(ctx, filter)
	if err != nil {
		return nil, 0, apierror.Internal(err)
	}
	return usuarios, total, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*model.Usuario, error) {
	u, err := s.ObtenerUsuario(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != u.Email {
		if otro, err := s.usuarios.FindByEmail(ctx, *req.Email); err == nil && otro.ID != id {
			return nil, apierror.Conflict("Ya existe un usuario con el email %s", *req.Email)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
		u.Email = *req.Email
	}
	if req.Nombre != nil {
		u.Nombre = *req.Nombre
	}
	if req.Rol != nil {
		u.Rol = *req.Rol
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apierror.Internal(err)
		}
		u.PasswordHash = string(hash)
	}

	if err := s.usuarios.Update(ctx, u); err != nil {
		return nil, apierror.Internal(err)
	}
	return u, nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id uuid.UUID) error {
	u, err := s.ObtenerUsuario(ctx, id)
	if err != nil {
		return err
	}
	u.Activo = false
	if err := s.usuarios.Update(ctx, u); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
