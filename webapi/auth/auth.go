package auth

import (
	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/middleware"
	authsvc "github.com/amirasaad/networth/pkg/service/auth"
	usersvc "github.com/amirasaad/networth/pkg/service/user"
	"github.com/amirasaad/networth/pkg/session"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers sign-up, sign-in and profile endpoints.
//
//   - POST  /auth/register : create a user
//   - POST  /auth/login    : exchange credentials for a token
//   - POST  /auth/logout   : no-op, tokens are stateless
//   - GET   /auth/me       : the caller's profile
//   - PATCH /auth/me       : change display name or password
func Routes(app *fiber.App, authSvc *authsvc.Service, userSvc *usersvc.Service, jwt *config.Jwt) {
	app.Post("/auth/register", Register(userSvc))
	app.Post("/auth/login", Login(authSvc))
	app.Post("/auth/logout", Logout())
	app.Get("/auth/me", middleware.JwtProtected(jwt), common.WithSession(Me(userSvc)))
	app.Patch("/auth/me", middleware.JwtProtected(jwt), common.WithSession(UpdateMe(userSvc)))
}

// Register handles user sign-up.
func Register(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.Register(c.UserContext(), input.Email, input.Password, input.DisplayName)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Registration failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User registered", UserDTO{
			ID:          u.ID.String(),
			Email:       u.Email,
			DisplayName: u.DisplayName,
		})
	}
}

// Login handles user authentication and returns a JWT token.
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.UserContext(), input.Email, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid email or password", err)
		}
		token, err := authSvc.GenerateToken(c.UserContext(), u)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", fiber.Map{"token": token})
	}
}

// Logout acknowledges sign-out. The client discards its token.
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logged out", nil)
	}
}

func Me(userSvc *usersvc.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		u, err := userSvc.GetUser(c.UserContext(), sess.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile", UserDTO{
			ID:          u.ID.String(),
			Email:       u.Email,
			DisplayName: u.DisplayName,
		})
	}
}

func UpdateMe(userSvc *usersvc.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		input, err := common.BindAndValidate[ProfileInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.UpdateProfile(c.UserContext(), sess.UserID, input.DisplayName, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile updated", UserDTO{
			ID:          u.ID.String(),
			Email:       u.Email,
			DisplayName: u.DisplayName,
		})
	}
}
