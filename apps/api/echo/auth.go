package echoapi

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/bahati/malezi/core"
	"github.com/bahati/malezi/core/user"
)

const contextUserKey = "user"

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	OrigIssuedAt int64    `json:"oriat,omitempty"`
	Username     string   `json:"username,omitempty"`
	Email        string   `json:"email,omitempty"`
	IsAdmin      bool     `json:"is_admin,omitempty"`    // -> ADMIN PORTAL
	IsEducator   bool     `json:"is_educator,omitempty"` // -> ADMIN PORTAL (limited)
	IsParent     bool     `json:"is_parent,omitempty"`   // -> PARENT PORTAL
	Roles        []string `json:"roles,omitempty"`
}

// HasAnyRole reports whether any claim role falls under one of the allowed
// role prefixes.
func (c *Claims) HasAnyRole(roles ...string) bool {
	for _, allowed := range roles {
		for _, role := range c.Roles {
			if strings.HasPrefix(role, allowed) {
				return true
			}
		}
	}
	return false
}

// authKit bundles the JWT configuration derived from the app config.
type authKit struct {
	conf      *core.Config
	jwtConfig middleware.JWTConfig
}

func newAuthKit(conf *core.Config) *authKit {
	return &authKit{
		conf: conf,
		jwtConfig: middleware.JWTConfig{
			SigningKey:    []byte(conf.SecretKey),
			SigningMethod: middleware.AlgorithmHS256,
			ContextKey:    "userToken",
			Claims:        new(Claims),
		},
	}
}

func (kit *authKit) middleware() echo.MiddlewareFunc {
	return middleware.JWTWithConfig(kit.jwtConfig)
}

func (kit *authKit) getUserClaims(usr user.User, origIat ...int64) *Claims {
	now := time.Now()
	nownix := now.Unix()

	var oriat int64
	if len(origIat) > 0 {
		oriat = origIat[0]
	} else {
		oriat = nownix
	}

	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    kit.conf.AppName,
			Subject:   usr.ID,
			Audience:  "Daycare",
			ExpiresAt: now.Add(kit.conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  nownix,
		},
		OrigIssuedAt: oriat,
		Username:     usr.Username,
		Email:        usr.Email,
		IsAdmin:      usr.IsAdmin(),
		IsEducator:   usr.IsEducator(),
		IsParent:     usr.IsParent(),
		Roles:        usr.Roles,
	}
}

// generateToken generates a signed JWT token string representing the user Claims.
func (kit *authKit) generateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(kit.jwtConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(kit.jwtConfig.SigningKey)
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func (kit *authKit) authenticate(uname, pwd string, svc *user.Service) (*Claims, error) {
	usr, err := svc.GetByUsernameOrEmail(uname)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return nil, errAuthenticationFailed
		}
		return nil, errors.Wrap(err, "finding user by username or email")
	}
	if err = usr.CheckPassword(pwd); err != nil {
		return nil, errAuthenticationFailed
	}
	if !usr.IsActive {
		return nil, errAccountDeactivated
	}
	usr, err = svc.SetLastLogin(usr)
	if err != nil {
		return nil, errors.Wrap(err, "setting lastLogin")
	}
	return kit.getUserClaims(usr), nil
}

func (kit *authKit) getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(kit.jwtConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func (kit *authKit) getContextUser(ctx echo.Context, svc *user.Service, clms ...Claims) (user.User, error) {
	if usr, ok := ctx.Get(contextUserKey).(user.User); ok {
		return usr, nil
	}

	var claims Claims
	var err error
	if len(clms) > 0 {
		claims = clms[0]
	} else {
		claims, err = kit.getContextClaims(ctx)
		if err != nil {
			return user.User{}, errors.Wrap(err, "getting context claims")
		}
	}

	usr, err := svc.GetByID(claims.Subject)
	if err != nil {
		return user.User{}, errors.Wrap(err, "finding user by ID")
	}
	ctx.Set(contextUserKey, usr)
	return usr, nil
}

func (kit *authKit) refreshToken(ctx echo.Context, svc *user.Service) (string, error) {
	claims, err := kit.getContextClaims(ctx)
	if err != nil {
		return "", errors.Wrap(err, "getting context claims")
	}

	usr, err := kit.getContextUser(ctx, svc, claims)
	if err != nil {
		return "", errors.Wrap(err, "getting context user")
	}

	// check if user is still active
	if !usr.IsActive {
		return "", errAccountDeactivated
	}

	// check if refresh has not expired
	expTime := time.Unix(claims.OrigIssuedAt, 0).Add(kit.conf.Server.JWTRefreshExpirationDelta)
	if time.Now().After(expTime) {
		return "", errRefreshExpired
	}

	newClaims := kit.getUserClaims(usr, claims.OrigIssuedAt)
	token, err := kit.generateToken(newClaims)
	return token, errors.Wrap(err, "generating token")
}
