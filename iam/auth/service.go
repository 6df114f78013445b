package auth

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/CavidAtamoghlanov/vacancy-management/iam/user"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/logx"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
)

// Service implements account registration and authentication. Login failures
// for unknown emails and wrong passwords report the same message so accounts
// cannot be enumerated.
type Service struct {
	sessions storage.SessionFactory
	creds    CredentialStore
	tokens   TokenService
	resets   ResetTokenStore
	notifier Notifier
	resetTTL time.Duration
}

func NewService(
	sessions storage.SessionFactory,
	creds CredentialStore,
	tokens TokenService,
	resets ResetTokenStore,
	notifier Notifier,
	resetTTL time.Duration,
) *Service {
	return &Service{
		sessions: sessions,
		creds:    creds,
		tokens:   tokens,
		resets:   resets,
		notifier: notifier,
		resetTTL: resetTTL,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) *response.Response {
	if strings.TrimSpace(req.UserName) == "" {
		return response.BadRequest("User name is required.")
	}
	email := kernel.NewEmail(req.Email)
	if !email.IsValid() {
		return response.BadRequest("Email is invalid.")
	}
	if req.Password != req.ConfirmPassword {
		return response.BadRequest("Passwords do not match.")
	}
	if problems := validatePassword(req.Password); len(problems) > 0 {
		return response.BadRequest("Password does not meet requirements: " + strings.Join(problems, ", "))
	}

	uow := s.sessions()
	users := storage.RepositoryFor[*user.User, kernel.UserID](uow)
	existing, err := users.GetAll(ctx, func(u *user.User) bool {
		return !u.IsDeleted && u.Email == email.String()
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(existing) > 0 {
		return response.FromError(ErrEmailTaken())
	}

	hash, err := s.creds.Hash(req.Password)
	if err != nil {
		logx.Errorf("hash password: %v", err)
		return response.FromError(err)
	}

	u := &user.User{
		UserName:     req.UserName,
		Email:        email.String(),
		PasswordHash: hash,
	}
	users.Add(u)
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("register user: %v", err)
		return response.FromError(err)
	}

	role := kernel.RoleName(strings.TrimSpace(req.Role))
	if role.IsEmpty() {
		role = RoleUser
	}
	if err := s.assignRole(ctx, uow, u.ID, role); err != nil {
		logx.Errorf("assign default role to user %d: %v", u.ID, err)
		return response.FromError(err)
	}
	return response.SuccessMessage("User successfully registered.")
}

func (s *Service) Login(ctx context.Context, req LoginRequest) *response.Response {
	email := kernel.NewEmail(req.Email)

	uow := s.sessions()
	users := storage.RepositoryFor[*user.User, kernel.UserID](uow)
	matched, err := users.GetAll(ctx, func(u *user.User) bool {
		return !u.IsDeleted && u.Email == email.String()
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(matched) == 0 {
		return response.Unauthorized("Invalid email or password.")
	}
	u := matched[0]

	if err := s.creds.Verify(u.PasswordHash, req.Password); err != nil {
		return response.Unauthorized("Invalid email or password.")
	}

	roles, err := s.rolesFor(ctx, uow, u.ID)
	if err != nil {
		return response.FromError(err)
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(u.ID, email, roles)
	if err != nil {
		logx.Errorf("generate token for user %d: %v", u.ID, err)
		return response.FromError(err)
	}

	return response.Success(LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserName:  u.UserName,
		Email:     u.Email,
		Roles:     roles,
	})
}

func (s *Service) ChangePassword(ctx context.Context, userID kernel.UserID, req ChangePasswordRequest) *response.Response {
	if req.NewPassword != req.ConfirmNewPassword {
		return response.BadRequest("Passwords do not match.")
	}
	if problems := validatePassword(req.NewPassword); len(problems) > 0 {
		return response.BadRequest("Password does not meet requirements: " + strings.Join(problems, ", "))
	}

	uow := s.sessions()
	users := storage.RepositoryFor[*user.User, kernel.UserID](uow)
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.Unauthorized("Invalid email or password.")
		}
		return response.FromError(err)
	}
	if u.IsDeleted {
		return response.Unauthorized("Invalid email or password.")
	}

	if err := s.creds.Verify(u.PasswordHash, req.CurrentPassword); err != nil {
		return response.Unauthorized("Current password is incorrect.")
	}

	hash, err := s.creds.Hash(req.NewPassword)
	if err != nil {
		logx.Errorf("hash password: %v", err)
		return response.FromError(err)
	}
	u.PasswordHash = hash
	users.Update(u)
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("change password for user %d: %v", userID, err)
		return response.FromError(err)
	}
	return response.SuccessMessage("Password successfully changed.")
}

// ForgotPassword issues a reset token. The response is the same whether the
// email exists or not.
func (s *Service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) *response.Response {
	const sent = "Password reset token has been sent."

	email := kernel.NewEmail(req.Email)
	if !email.IsValid() {
		return response.BadRequest("Email is invalid.")
	}

	uow := s.sessions()
	users := storage.RepositoryFor[*user.User, kernel.UserID](uow)
	matched, err := users.GetAll(ctx, func(u *user.User) bool {
		return !u.IsDeleted && u.Email == email.String()
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(matched) == 0 {
		return response.SuccessMessage(sent)
	}

	token := uuid.NewString()
	if err := s.resets.Store(ctx, email, token, s.resetTTL); err != nil {
		logx.Errorf("store reset token: %v", err)
		return response.FromError(err)
	}
	if err := s.notifier.SendPasswordReset(ctx, email, token); err != nil {
		logx.Errorf("send reset token: %v", err)
		return response.FromError(err)
	}
	return response.SuccessMessage(sent)
}

func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) *response.Response {
	if req.NewPassword != req.ConfirmNewPassword {
		return response.BadRequest("Passwords do not match.")
	}
	if problems := validatePassword(req.NewPassword); len(problems) > 0 {
		return response.BadRequest("Password does not meet requirements: " + strings.Join(problems, ", "))
	}

	email := kernel.NewEmail(req.Email)
	if err := s.resets.Verify(ctx, email, req.Token); err != nil {
		return response.Unauthorized("Invalid or expired reset token.")
	}

	uow := s.sessions()
	users := storage.RepositoryFor[*user.User, kernel.UserID](uow)
	matched, err := users.GetAll(ctx, func(u *user.User) bool {
		return !u.IsDeleted && u.Email == email.String()
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(matched) == 0 {
		return response.Unauthorized("Invalid or expired reset token.")
	}
	u := matched[0]

	hash, err := s.creds.Hash(req.NewPassword)
	if err != nil {
		logx.Errorf("hash password: %v", err)
		return response.FromError(err)
	}
	u.PasswordHash = hash
	users.Update(u)
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("reset password for user %d: %v", u.ID, err)
		return response.FromError(err)
	}

	if err := s.resets.Invalidate(ctx, email); err != nil {
		logx.Warnf("invalidate reset token for %s: %v", email, err)
	}
	return response.SuccessMessage("Password successfully reset.")
}

// assignRole links the user to the named role, creating the role row on
// first use.
func (s *Service) assignRole(ctx context.Context, uow *storage.UnitOfWork, userID kernel.UserID, name kernel.RoleName) error {
	roles := storage.RepositoryFor[*user.Role, kernel.RoleID](uow)
	matched, err := roles.GetAll(ctx, func(r *user.Role) bool {
		return r.Name == name
	})
	if err != nil {
		return err
	}

	var role *user.Role
	if len(matched) > 0 {
		role = matched[0]
	} else {
		role = &user.Role{Name: name}
		roles.Add(role)
		if _, err := uow.Commit(ctx); err != nil {
			return err
		}
	}

	userRoles := storage.RepositoryFor[*user.UserRole, kernel.UserRoleID](uow)
	userRoles.Add(&user.UserRole{UserID: userID, RoleID: role.ID})
	_, err = uow.Commit(ctx)
	return err
}

func (s *Service) rolesFor(ctx context.Context, uow *storage.UnitOfWork, userID kernel.UserID) ([]string, error) {
	userRoles := storage.RepositoryFor[*user.UserRole, kernel.UserRoleID](uow)
	links, err := userRoles.GetAll(ctx, func(ur *user.UserRole) bool {
		return ur.UserID == userID
	})
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}

	wanted := make(map[kernel.RoleID]bool, len(links))
	for _, l := range links {
		wanted[l.RoleID] = true
	}

	roles := storage.RepositoryFor[*user.Role, kernel.RoleID](uow)
	matched, err := roles.GetAll(ctx, func(r *user.Role) bool {
		return wanted[r.ID]
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matched))
	for _, r := range matched {
		names = append(names, r.Name.String())
	}
	return names, nil
}

// validatePassword collects every policy violation so the caller sees them
// all at once.
func validatePassword(password string) []string {
	var problems []string
	if len(password) < 8 {
		problems = append(problems, "must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		problems = append(problems, "must contain an uppercase letter")
	}
	if !hasLower {
		problems = append(problems, "must contain a lowercase letter")
	}
	if !hasDigit {
		problems = append(problems, "must contain a digit")
	}
	return problems
}
