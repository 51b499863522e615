package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
	"github.com/Toodlepoodle/property-listings-martin/pkg/database"
	"github.com/Toodlepoodle/property-listings-martin/pkg/email"
	"github.com/Toodlepoodle/property-listings-martin/pkg/metrics"
	"github.com/Toodlepoodle/property-listings-martin/pkg/otp"
	"github.com/Toodlepoodle/property-listings-martin/pkg/utils/jwt"
)

var otpService *otp.Service

func InitAuthController() {
	otpService = otp.NewService(database.OTPs)
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type OTPRequestInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Channel    string `json:"channel" validate:"required"`
}

type OTPVerifyInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Code       string `json:"code" validate:"required"`
}

func Register(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if input.Email == "" || len(input.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and a password of at least 6 characters are required",
		})
	}

	col := database.Users.Load()
	for _, u := range col.Items {
		if strings.EqualFold(u.Email, input.Email) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Email already exists",
			})
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not hash password",
		})
	}

	user := model.User{
		ID:        col.NextID,
		Username:  model.GenerateUsername(input.Email),
		Email:     input.Email,
		Name:      input.Name,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}
	col.Items = append(col.Items, user)
	col.NextID++

	if err := database.Users.Save(col); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create user",
		})
	}

	token, err := jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful",
		"token":   token,
		"user":    user.GetPublicProfile(),
	})
}

func Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	col := database.Users.Load()
	for _, user := range col.Items {
		if !strings.EqualFold(user.Email, input.Email) || user.Password == "" {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			break
		}

		token, err := jwt.GenerateToken(user.ID, user.Email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not generate token",
			})
		}

		metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
		return c.JSON(fiber.Map{
			"token": token,
			"user":  user.GetPublicProfile(),
		})
	}

	metrics.LoginAttemptsTotal.WithLabelValues("failed").Inc()
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Invalid credentials",
	})
}

// RequestOTP issues a fresh login code and dispatches it over the chosen
// channel. Reissuing unconditionally replaces any pending code.
func RequestOTP(c *fiber.Ctx) error {
	input := new(OTPRequestInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	channel := model.OTPChannel(input.Channel)
	if input.Identifier == "" || !channel.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "identifier and a channel of email or phone are required",
		})
	}

	rec, err := otpService.Issue(input.Identifier, channel)
	if err != nil {
		log.Error().Err(err).Msg("could not issue OTP")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not issue code",
		})
	}
	metrics.OTPIssuedTotal.Inc()

	dispatchCode(rec)

	return c.JSON(fiber.Map{
		"message": "Verification code sent",
	})
}

// dispatchCode hands the code to the delivery channel. Delivery failure is a
// collaborator problem: it is logged and the issued code stays valid.
func dispatchCode(rec model.OTPRecord) {
	switch rec.Channel {
	case model.ChannelEmail:
		if email.GlobalEmailService == nil {
			log.Warn().Str("identifier", rec.Identifier).Msg("email service not configured, OTP not delivered")
			return
		}
		if err := email.GlobalEmailService.SendOTPCode(rec.Identifier, rec.Code, int(otp.Expiry.Minutes())); err != nil {
			log.Error().Err(err).Str("identifier", rec.Identifier).Msg("could not send OTP email")
		}
	case model.ChannelPhone:
		// No SMS gateway is wired up; log-only stub stands in for the
		// external sender capability.
		log.Info().Str("identifier", rec.Identifier).Msg("SMS dispatch requested")
	}
}

// VerifyOTP checks the code and, on success, signs the caller in — creating
// the identity on first login.
func VerifyOTP(c *fiber.Ctx) error {
	input := new(OTPVerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if input.Identifier == "" || input.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "identifier and code are required",
		})
	}

	result, err := otpService.Verify(input.Identifier, input.Code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Verification failed",
		})
	}
	if !result.OK {
		metrics.LoginAttemptsTotal.WithLabelValues("failed").Inc()
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"reason":  result.Reason,
		})
	}

	user, err := getOrCreateIdentity(input.Identifier)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create user",
		})
	}

	token, err := jwt.GenerateToken(user.ID, input.Identifier)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(fiber.Map{
		"success": true,
		"reason":  result.Reason,
		"token":   token,
		"user":    user.GetPublicProfile(),
	})
}

// getOrCreateIdentity resolves the identifier against the user collection,
// creating an OTP identity on first sight.
func getOrCreateIdentity(identifier string) (model.User, error) {
	col := database.Users.Load()
	for _, u := range col.Items {
		if strings.EqualFold(u.Email, identifier) || u.Phone == identifier {
			return u, nil
		}
	}

	user := model.User{
		ID:        col.NextID,
		Username:  model.GenerateUsername(identifier),
		CreatedAt: time.Now(),
	}
	if strings.Contains(identifier, "@") {
		user.Email = identifier
	} else {
		user.Phone = identifier
	}

	col.Items = append(col.Items, user)
	col.NextID++
	if err := database.Users.Save(col); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// GetMe returns the authenticated user's record.
func GetMe(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	col := database.Users.Load()
	for _, u := range col.Items {
		if u.ID == claims.UserID {
			return c.JSON(fiber.Map{"user": u.GetPublicProfile()})
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "User not found",
	})
}
