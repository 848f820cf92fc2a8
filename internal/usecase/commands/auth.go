package commands

import (
	"context"

	"parkspace/internal/domain/user"
	reqdto "parkspace/internal/handler/dto/request"
	"parkspace/internal/infra"
	"parkspace/internal/pkg/errs"
	"parkspace/internal/pkg/jwt"
	"parkspace/internal/pkg/password"
	"parkspace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RegisterVehicle(ctx context.Context, actor user.Actor, req reqdto.CreateVehicleRequest) (*queries.VehicleView, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	pool       *pgxpool.Pool
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service, pool *pgxpool.Pool) AuthCommands {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		pool:       pool,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u, err := user.NewUser(email, hash, req.Name, role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := a.userRepo.Create(ctx, a.pool, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.issueToken(u)
}

func (a *authUseCaseImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := a.userRepo.FindByEmail(ctx, a.pool, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(u.PasswordHash(), req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issueToken(u)
}

func (a *authUseCaseImpl) RegisterVehicle(ctx context.Context, actor user.Actor, req reqdto.CreateVehicleRequest) (*queries.VehicleView, error) {
	v := user.Vehicle{
		ID:        uuid.New(),
		OwnerID:   actor.ID,
		CarNumber: req.CarNumber,
		CarModel:  req.CarModel,
	}
	if err := a.userRepo.CreateVehicle(ctx, a.pool, v); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var view queries.VehicleView
	if err := copier.Copy(&view, &v); err != nil {
		return nil, errs.Wrap(err, "failed to map vehicle view")
	}
	return &view, nil
}

func (a *authUseCaseImpl) issueToken(u *user.User) (*LoginResult, error) {
	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{
		Token: token,
		User: &queries.AuthorizedUserView{
			ID:        u.ID(),
			Email:     u.Email().String(),
			Name:      u.Name(),
			Role:      u.Role().String(),
			CreatedAt: u.CreatedAt(),
		},
	}, nil
}
